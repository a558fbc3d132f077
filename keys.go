package runtype

import (
	"slices"

	"github.com/signadot/runtype/ir"
)

// KeysType accepts the strings which are declared keys of an object type.
type KeysType struct {
	name  string
	inner Type
	keys  []string
}

func Keys(t Type, name ...string) *KeysType {
	mustType("$keys", t)
	props, ok := propsOf(t)
	if !ok {
		panic(constructionErr("$keys: %s (%s) declares no props", t.Name(), t.Kind()))
	}
	return &KeysType{
		name:  pickName(name, func() string { return DefaultKeysName(t) }),
		inner: t,
		keys:  props.Keys(),
	}
}

func (t *KeysType) Name() string   { return t.name }
func (t *KeysType) Kind() Kind     { return KindKeys }
func (t *KeysType) Type() Type     { return t.inner }
func (t *KeysType) Keys() []string { return slices.Clone(t.keys) }

func (t *KeysType) Validate(v *ir.Node, c Context) Validation {
	if typeOf(v) == ir.StringType && slices.Contains(t.keys, v.String) {
		return success(v)
	}
	return failure(v, c)
}

// propsOf finds the declared props of t, looking through wrappers which
// keep the object's key set.
func propsOf(t Type) (Props, bool) {
	switch x := t.(type) {
	case *ObjectType:
		return x.props, true
	case *ExactType:
		return x.props, true
	case *ShapeType:
		return x.props, true
	case *MaybeType:
		return propsOf(x.inner)
	case *RefinementType:
		return propsOf(x.inner)
	case *RecursionType:
		return propsOf(x.def)
	case *SelfType:
		return propsOf(x.bound())
	}
	return nil, false
}
