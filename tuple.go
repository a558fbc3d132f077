package runtype

import (
	"strconv"

	"github.com/signadot/runtype/ir"
)

// TupleType checks one type per position. Positions past the declared
// types are ignored, unless the tuple is exact, in which case each one is
// rejected at (index, nil). A reconstructed output has one element per
// declared type.
type TupleType struct {
	name  string
	types []Type
	exact bool
}

func Tuple(types []Type, name ...string) *TupleType {
	return newTuple(types, false, name)
}

// ExactTuple is a Tuple which rejects inputs longer than its types.
func ExactTuple(types []Type, name ...string) *TupleType {
	return newTuple(types, true, name)
}

func newTuple(types []Type, exact bool, name []string) *TupleType {
	for _, t := range types {
		mustType("tuple", t)
	}
	types = append([]Type(nil), types...)
	return &TupleType{
		name: pickName(name, func() string {
			if exact {
				return DefaultExactTupleName(types)
			}
			return DefaultTupleName(types)
		}),
		types: types,
		exact: exact,
	}
}

func (t *TupleType) Name() string  { return t.name }
func (t *TupleType) Kind() Kind    { return KindTuple }
func (t *TupleType) Types() []Type { return append([]Type(nil), t.types...) }
func (t *TupleType) Exact() bool   { return t.exact }

func (t *TupleType) Validate(v *ir.Node, c Context) Validation {
	if r := Arr.Validate(v, c); r.IsFailure() {
		return r
	}
	var (
		errs    Errors
		changed bool
		out     = make([]*ir.Node, len(t.types))
	)
	for i, typ := range t.types {
		var e *ir.Node
		if i < len(v.Values) {
			e = v.Values[i]
		} else {
			e = ir.Undefined()
		}
		r := typ.Validate(e, c.Append(strconv.Itoa(i), typ))
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
			continue
		}
		out[i] = r.Value()
		if out[i] != e {
			changed = true
		}
	}
	if t.exact {
		for i := len(t.types); i < len(v.Values); i++ {
			errs = append(errs, &ValidationError{
				Value:   v.Values[i],
				Context: c.Append(strconv.Itoa(i), Nil),
			})
		}
	}
	if len(errs) != 0 {
		return failures(errs)
	}
	if changed {
		return success(&ir.Node{Type: ir.ArrayType, Values: out})
	}
	return success(v)
}
