package runtype

import (
	"strings"

	"github.com/signadot/runtype/ir"
)

// Default names are derived once, when a type is constructed, from the
// names its children have at that time.

func names(ts []Type) []string {
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = t.Name()
	}
	return res
}

func DefaultArrayName(elem Type) string {
	return "Array<" + elem.Name() + ">"
}

func DefaultUnionName(ts []Type) string {
	return "(" + strings.Join(names(ts), " | ") + ")"
}

func DefaultIntersectionName(ts []Type) string {
	return "(" + strings.Join(names(ts), " & ") + ")"
}

func DefaultTupleName(ts []Type) string {
	return "[" + strings.Join(names(ts), ", ") + "]"
}

func DefaultExactTupleName(ts []Type) string {
	return "$Exact<" + DefaultTupleName(ts) + ">"
}

func DefaultMaybeName(t Type) string {
	return "?" + t.Name()
}

func DefaultMappingName(domain, codomain Type) string {
	return "{ [key: " + domain.Name() + "]: " + codomain.Name() + " }"
}

func DefaultRefinementName(t Type, predicate string) string {
	return "(" + t.Name() + " | " + predicate + ")"
}

func DefaultMapName(t Type, f string) string {
	return "(" + t.Name() + " => " + f + ")"
}

// DefaultObjectName is "{ k1: T1, k2: T2 }", or "{  }" without props.
func DefaultObjectName(props Props) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Key + ": " + p.Type.Name()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func DefaultExactName(props Props) string {
	return "$Exact<" + DefaultObjectName(props) + ">"
}

func DefaultShapeName(t Type) string {
	return "$Shape<" + t.Name() + ">"
}

func DefaultKeysName(t Type) string {
	return "$Keys<" + t.Name() + ">"
}

func DefaultClassOfName(class *ir.Class) string {
	return "Class<" + class.Name + ">"
}
