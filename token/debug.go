package token

import "github.com/signadot/runtype/debug"

// PrintTokens logs toks one per line under the heading msg.
func PrintTokens(toks []Token, msg string) {
	debug.Logf("%s: %d tokens\n", msg, len(toks))
	for i := range toks {
		t := &toks[i]
		debug.Logf("  %-10s %-12q %s\n", t.Type, t.Bytes, t.Pos)
	}
}
