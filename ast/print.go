package ast

import (
	"strconv"
	"strings"
)

// String renders an annotation as source, parenthesizing where
// precedence requires it.
func String(a Annotation) string {
	var b strings.Builder
	write(&b, a, 0)
	return b.String()
}

// precedence levels, loosest first
const (
	precUnion = iota
	precIntersection
	precPrefix
	precPostfix
)

func write(b *strings.Builder, a Annotation, prec int) {
	switch x := a.(type) {
	case *UnionTypeAnnotation:
		list(b, x.Types, " | ", precUnion, prec, precIntersection)
	case *IntersectionTypeAnnotation:
		list(b, x.Types, " & ", precIntersection, prec, precPrefix)
	case *NullableTypeAnnotation:
		if prec > precPrefix {
			b.WriteString("(")
			defer b.WriteString(")")
		}
		b.WriteString("?")
		write(b, x.TypeAnnotation, precPrefix)
	case *ArrayTypeAnnotation:
		write(b, x.ElementType, precPostfix)
		b.WriteString("[]")
	case *GenericTypeAnnotation:
		b.WriteString(x.ID.Name)
		if len(x.TypeParameters) != 0 {
			b.WriteString("<")
			for i, p := range x.TypeParameters {
				if i > 0 {
					b.WriteString(", ")
				}
				write(b, p, precUnion)
			}
			b.WriteString(">")
		}
	case *ObjectTypeAnnotation:
		open, closer := "{ ", " }"
		if x.Exact {
			open, closer = "{| ", " |}"
		}
		if len(x.Properties)+len(x.Indexers) == 0 {
			b.WriteString(strings.TrimSpace(open) + strings.TrimSpace(closer))
			return
		}
		b.WriteString(open)
		n := 0
		for _, p := range x.Properties {
			if n > 0 {
				b.WriteString(", ")
			}
			n++
			b.WriteString(p.Key.Name)
			if p.Optional {
				b.WriteString("?")
			}
			b.WriteString(": ")
			write(b, p.Value, precUnion)
		}
		for _, ix := range x.Indexers {
			if n > 0 {
				b.WriteString(", ")
			}
			n++
			b.WriteString("[")
			if ix.ID != nil {
				b.WriteString(ix.ID.Name + ": ")
			}
			write(b, ix.Key, precUnion)
			b.WriteString("]: ")
			write(b, ix.Value, precUnion)
		}
		b.WriteString(closer)
	case *TupleTypeAnnotation:
		b.WriteString("[")
		for i, t := range x.Types {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, t, precUnion)
		}
		b.WriteString("]")
	case *StringTypeAnnotation:
		b.WriteString("string")
	case *NumberTypeAnnotation:
		b.WriteString("number")
	case *BooleanTypeAnnotation:
		b.WriteString("boolean")
	case *AnyTypeAnnotation:
		b.WriteString("any")
	case *MixedTypeAnnotation:
		b.WriteString("mixed")
	case *VoidTypeAnnotation:
		b.WriteString("void")
	case *NullLiteralTypeAnnotation:
		b.WriteString("null")
	case *StringLiteralTypeAnnotation:
		b.WriteString(strconv.Quote(x.Value))
	case *NumberLiteralTypeAnnotation:
		if x.Raw != "" {
			b.WriteString(x.Raw)
		} else {
			b.WriteString(strconv.FormatFloat(x.Value, 'g', -1, 64))
		}
	case *BooleanLiteralTypeAnnotation:
		b.WriteString(strconv.FormatBool(x.Value))
	}
}

func list(b *strings.Builder, ts []Annotation, sep string, own, outer, inner int) {
	if outer > own {
		b.WriteString("(")
		defer b.WriteString(")")
	}
	for i, t := range ts {
		if i > 0 {
			b.WriteString(sep)
		}
		write(b, t, inner)
	}
}
