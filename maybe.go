package runtype

import "github.com/signadot/runtype/ir"

// MaybeType accepts null and undefined as is, and otherwise delegates to
// its wrapped type at the same context.
type MaybeType struct {
	name  string
	inner Type
}

func Maybe(t Type, name ...string) *MaybeType {
	mustType("maybe", t)
	return &MaybeType{
		name:  pickName(name, func() string { return DefaultMaybeName(t) }),
		inner: t,
	}
}

func (t *MaybeType) Name() string { return t.name }
func (t *MaybeType) Kind() Kind   { return KindMaybe }
func (t *MaybeType) Type() Type   { return t.inner }

func (t *MaybeType) Validate(v *ir.Node, c Context) Validation {
	if isNil(v) {
		return success(v)
	}
	return t.inner.Validate(v, c)
}
