package codegen

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff from old to new, each line prefixed by "-",
// "+" or " ". Diff returns "" if old and new are equal.
func Diff(old, new []byte) string {
	return diff(old, new, false)
}

// ColorDiff is like Diff with deletions in red and insertions in green.
func ColorDiff(old, new []byte) string {
	return diff(old, new, true)
}

func diff(old, new []byte, colored bool) string {
	if bytes.Equal(old, new) {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	var sb strings.Builder
	for i := range diffs {
		d := &diffs[i]
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffDelete:
				sb.WriteString(del.Sprint("-" + line))
			case diffpatch.DiffInsert:
				sb.WriteString(ins.Sprint("+" + line))
			case diffpatch.DiffEqual:
				sb.WriteString(" " + line)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
