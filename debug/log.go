package debug

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/runtype/ir"
)

// Logf writes to the debug output. Node arguments are rendered as
// compact JSON and decoded documents as indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		args[i] = loggable(a)
	}
	fmt.Fprintf(out, msg, args...)
}

func loggable(a any) any {
	switch x := a.(type) {
	case *ir.Node:
		if x == nil {
			return "undefined"
		}
		return ir.ToJSON(x)
	case map[string]any, []any:
		d, err := json.MarshalIndent(x, "   |", "  ")
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(d)
	}
	return a
}
