package encode

import (
	"strings"

	"github.com/signadot/runtype/ir"
)

// MustString encodes node without its trailing newline, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(node, &sb, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(sb.String(), "\n")
}
