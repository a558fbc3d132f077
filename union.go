package runtype

import (
	"github.com/signadot/runtype/debug"
	"github.com/signadot/runtype/ir"
)

// UnionType accepts a value accepted by any of its members, trying them
// in order. When every member rejects the value, a single error is
// reported at the union's own context.
type UnionType struct {
	name  string
	types []Type
}

func Union(types []Type, name ...string) *UnionType {
	mustTypes("union", types)
	types = append([]Type(nil), types...)
	return &UnionType{
		name:  pickName(name, func() string { return DefaultUnionName(types) }),
		types: types,
	}
}

func (t *UnionType) Name() string  { return t.name }
func (t *UnionType) Kind() Kind    { return KindUnion }
func (t *UnionType) Types() []Type { return append([]Type(nil), t.types...) }

func (t *UnionType) Validate(v *ir.Node, c Context) Validation {
	for i, typ := range t.types {
		r := typ.Validate(v, c)
		if r.IsSuccess() {
			if debug.Union() {
				debug.Logf("union %s: member %d (%s) accepted %v\n", t.name, i, typ.Name(), v)
			}
			return r
		}
	}
	if debug.Union() {
		debug.Logf("union %s: no member accepted %v\n", t.name, v)
	}
	return failure(v, c)
}
