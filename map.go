package runtype

import (
	"github.com/signadot/runtype/either"
	"github.com/signadot/runtype/ir"
)

// MapType transforms the output of a type. The function always produces
// a new value from the validated one.
type MapType struct {
	name  string
	inner Type
	f     func(*ir.Node) *ir.Node
}

func Map(t Type, f func(*ir.Node) *ir.Node, name ...string) *MapType {
	mustType("map", t)
	if f == nil {
		panic(constructionErr("map: nil function"))
	}
	return &MapType{
		name:  pickName(name, func() string { return DefaultMapName(t, FuncName(f, 1)) }),
		inner: t,
		f:     f,
	}
}

func (t *MapType) Name() string { return t.name }
func (t *MapType) Kind() Kind   { return KindMap }
func (t *MapType) Type() Type   { return t.inner }

func (t *MapType) Validate(v *ir.Node, c Context) Validation {
	return either.Map(t.inner.Validate(v, c), t.f)
}
