package runtype

import (
	"strconv"

	"github.com/signadot/runtype/ir"
)

// IntersectionType feeds the input through each member in order, each
// member seeing the output of the previous one. Errors from every member
// are collected; a rejecting member leaves the running value unchanged.
type IntersectionType struct {
	name  string
	types []Type
}

func Intersection(types []Type, name ...string) *IntersectionType {
	mustTypes("intersection", types)
	types = append([]Type(nil), types...)
	return &IntersectionType{
		name:  pickName(name, func() string { return DefaultIntersectionName(types) }),
		types: types,
	}
}

func (t *IntersectionType) Name() string  { return t.name }
func (t *IntersectionType) Kind() Kind    { return KindIntersection }
func (t *IntersectionType) Types() []Type { return append([]Type(nil), t.types...) }

func (t *IntersectionType) Validate(v *ir.Node, c Context) Validation {
	var (
		errs Errors
		cur  = v
	)
	for i, typ := range t.types {
		r := typ.Validate(cur, c.Append(strconv.Itoa(i), typ))
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
			continue
		}
		cur = r.Value()
	}
	if len(errs) != 0 {
		return failures(errs)
	}
	return success(cur)
}
