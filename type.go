package runtype

import (
	"github.com/signadot/runtype/either"
	"github.com/signadot/runtype/ir"
)

// Validation is the result of validating a value: the accepted, possibly
// reconstructed value or the errors collected along the way.
type Validation = either.Result[*ValidationError, *ir.Node]

// Type is a runtime type. Types are immutable once constructed and may be
// shared by any number of parents and goroutines.
type Type interface {
	// Name is the diagnostic name, used as the path label in errors.
	Name() string
	Kind() Kind
	// Validate checks v at context c, whose last entry is the entry for
	// this type.
	Validate(v *ir.Node, c Context) Validation
}

type Kind int

const (
	KindIrreducible Kind = iota
	KindLiteral
	KindInstanceOf
	KindClassOf
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindMaybe
	KindMapping
	KindRefinement
	KindMap
	KindObject
	KindExact
	KindShape
	KindKeys
	KindRecursion
)

var kindNames = [...]string{
	KindIrreducible:  "irreducible",
	KindLiteral:      "literal",
	KindInstanceOf:   "instanceOf",
	KindClassOf:      "classOf",
	KindArray:        "array",
	KindTuple:        "tuple",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindMaybe:        "maybe",
	KindMapping:      "mapping",
	KindRefinement:   "refinement",
	KindMap:          "map",
	KindObject:       "object",
	KindExact:        "$exact",
	KindShape:        "$shape",
	KindKeys:         "$keys",
	KindRecursion:    "recursion",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func success(v *ir.Node) Validation {
	return either.Success[*ValidationError](v)
}

func failures(errs Errors) Validation {
	return either.Failure[*ValidationError, *ir.Node](errs)
}

// failure is the single error outcome of v at c.
func failure(v *ir.Node, c Context) Validation {
	return failures(Errors{&ValidationError{Value: v, Context: c}})
}

// typeOf treats a nil node as undefined.
func typeOf(v *ir.Node) ir.Type {
	if v == nil {
		return ir.UndefinedType
	}
	return v.Type
}

// pickName returns the explicit name if one is given, else def().
func pickName(names []string, def func() string) string {
	if len(names) > 0 && names[0] != "" {
		return names[0]
	}
	return def()
}

func mustType(what string, t Type) {
	if t == nil {
		panic(constructionErr("%s: nil type", what))
	}
}

func mustTypes(what string, ts []Type) {
	if len(ts) == 0 {
		panic(constructionErr("%s: empty type list", what))
	}
	for _, t := range ts {
		mustType(what, t)
	}
}
