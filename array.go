package runtype

import (
	"slices"
	"strconv"

	"github.com/signadot/runtype/ir"
)

type ArrayType struct {
	name string
	elem Type
}

func Array(elem Type, name ...string) *ArrayType {
	mustType("array", elem)
	return &ArrayType{
		name: pickName(name, func() string { return DefaultArrayName(elem) }),
		elem: elem,
	}
}

func (t *ArrayType) Name() string { return t.name }
func (t *ArrayType) Kind() Kind   { return KindArray }
func (t *ArrayType) Elem() Type   { return t.elem }

func (t *ArrayType) Validate(v *ir.Node, c Context) Validation {
	if r := Arr.Validate(v, c); r.IsFailure() {
		return r
	}
	var (
		errs Errors
		out  []*ir.Node
	)
	for i, e := range v.Values {
		r := t.elem.Validate(e, c.Append(strconv.Itoa(i), t.elem))
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
			continue
		}
		ve := r.Value()
		if ve != e && out == nil {
			out = slices.Clone(v.Values)
		}
		if out != nil {
			out[i] = ve
		}
	}
	if len(errs) != 0 {
		return failures(errs)
	}
	if out != nil {
		return success(&ir.Node{Type: ir.ArrayType, Values: out})
	}
	return success(v)
}
