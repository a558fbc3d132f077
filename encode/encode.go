package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/runtype/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool
	format        Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	node = orUndefined(node)
	var (
		b   strings.Builder
		err error
	)
	switch es.format {
	case JSONFormat:
		err = encodeJSON(node, &b, es)
	case YAMLFormat:
		err = encodeYAML(node, &b, es, false)
	default:
		err = fmt.Errorf("%w: %s", ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	out := strings.TrimPrefix(b.String(), "\n") + "\n"
	_, err = io.WriteString(w, out)
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeNL(b *strings.Builder, es *EncState) {
	if es.wire {
		return
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

// visible are the field indices of an object which have a rendering.
func visible(node *ir.Node) []int {
	res := make([]int, 0, len(node.Fields))
	for i, v := range node.Values {
		if v == nil {
			continue
		}
		switch v.Type {
		case ir.UndefinedType, ir.FuncType:
			continue
		}
		res = append(res, i)
	}
	return res
}

func scalar(node *ir.Node, es *EncState, quote func(string) string) string {
	var s string
	switch node.Type {
	case ir.UndefinedType, ir.NullType, ir.FuncType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if !node.IsFinite() {
			return applyColor(es, ir.NullType, ValueColor, "null")
		}
		s = ir.FormatNumber(node.Number)
	case ir.StringType:
		s = quote(node.String)
	}
	return applyColor(es, node.Type, ValueColor, s)
}

// orUndefined returns node, or an undefined node in place of nil.
func orUndefined(node *ir.Node) *ir.Node {
	if node == nil {
		return ir.Undefined()
	}
	return node
}

func encodeJSON(node *ir.Node, b *strings.Builder, es *EncState) error {
	node = orUndefined(node)
	switch node.Type {
	case ir.ObjectType:
		idx := visible(node)
		if len(idx) == 0 {
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, "{}"))
			return nil
		}
		b.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
		es.depth++
		for n, i := range idx {
			if n > 0 {
				b.WriteString(applyColor(es, ir.ObjectType, SepColor, ","))
			}
			writeNL(b, es)
			b.WriteString(applyColor(es, ir.ObjectType, FieldColor, ir.Quote(node.Fields[i])))
			sep := ": "
			if es.wire {
				sep = ":"
			}
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, sep))
			if err := encodeJSON(node.Values[i], b, es); err != nil {
				return err
			}
		}
		es.depth--
		writeNL(b, es)
		b.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			b.WriteString(applyColor(es, ir.ArrayType, SepColor, "[]"))
			return nil
		}
		b.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				b.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
			}
			writeNL(b, es)
			if err := encodeJSON(v, b, es); err != nil {
				return err
			}
		}
		es.depth--
		writeNL(b, es)
		b.WriteString(applyColor(es, ir.ArrayType, SepColor, "]"))
	default:
		b.WriteString(scalar(node, es, ir.Quote))
	}
	return nil
}

func isBlock(node *ir.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ir.ObjectType:
		return len(visible(node)) != 0
	case ir.ArrayType:
		return len(node.Values) != 0
	}
	return false
}

// encodeYAML writes node in block style. afterDash is set when node is an
// array item, whose first line continues the "- " of the item.
func encodeYAML(node *ir.Node, b *strings.Builder, es *EncState, afterDash bool) error {
	if es.wire {
		// flow style is a subset of JSON
		return encodeJSON(node, b, es)
	}
	node = orUndefined(node)
	switch node.Type {
	case ir.ObjectType:
		idx := visible(node)
		if len(idx) == 0 {
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, "{}"))
			return nil
		}
		for n, i := range idx {
			if n > 0 || !afterDash {
				writeNL(b, es)
			}
			b.WriteString(applyColor(es, ir.ObjectType, FieldColor, quoteYAML(node.Fields[i])))
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
			v := node.Values[i]
			if isBlock(v) {
				es.depth++
				if err := encodeYAML(v, b, es, false); err != nil {
					return err
				}
				es.depth--
				continue
			}
			b.WriteString(" ")
			if err := encodeYAML(v, b, es, false); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		if len(node.Values) == 0 {
			b.WriteString(applyColor(es, ir.ArrayType, SepColor, "[]"))
			return nil
		}
		for i, v := range node.Values {
			if i > 0 || !afterDash {
				writeNL(b, es)
			}
			b.WriteString(applyColor(es, ir.ArrayType, SepColor, "-"))
			b.WriteString(" ")
			es.depth++
			if err := encodeYAML(v, b, es, true); err != nil {
				return err
			}
			es.depth--
		}
	default:
		b.WriteString(scalar(node, es, quoteYAML))
	}
	return nil
}

var yamlReserved = map[string]bool{
	"true": true, "false": true, "null": true, "~": true,
	"yes": true, "no": true, "on": true, "off": true, "y": true, "n": true,
}

// quoteYAML quotes s when it would not read back as the same plain
// string scalar.
func quoteYAML(s string) string {
	if needsQuote(s) {
		return ir.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	if s == "" || yamlReserved[strings.ToLower(s)] {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if strings.ContainsAny(s[:1], "-?:,[]{}#&*!|>'\"%@` \t") {
		return true
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, ":") {
		return true
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
