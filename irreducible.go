package runtype

import "github.com/signadot/runtype/ir"

// IrreducibleType is a leaf type checking a primitive category.
type IrreducibleType struct {
	name string
	is   func(*ir.Node) bool
}

// Irreducible builds a leaf type from a predicate.
func Irreducible(name string, is func(*ir.Node) bool) *IrreducibleType {
	if is == nil {
		panic(constructionErr("irreducible %q: nil predicate", name))
	}
	return &IrreducibleType{name: name, is: is}
}

func (t *IrreducibleType) Name() string { return t.name }
func (t *IrreducibleType) Kind() Kind   { return KindIrreducible }

func (t *IrreducibleType) Is(v *ir.Node) bool {
	return t.is(v)
}

func (t *IrreducibleType) Validate(v *ir.Node, c Context) Validation {
	if t.is(v) {
		return success(v)
	}
	return failure(v, c)
}

func isNil(v *ir.Node) bool {
	return typeOf(v).IsNil()
}

var (
	Nil  = Irreducible("nil", isNil)
	Null = Irreducible("null", func(v *ir.Node) bool { return typeOf(v) == ir.NullType })
	Void = Irreducible("void", func(v *ir.Node) bool { return typeOf(v) == ir.UndefinedType })
	Any  = Irreducible("any", func(*ir.Node) bool { return true })

	String  = Irreducible("string", func(v *ir.Node) bool { return typeOf(v) == ir.StringType })
	Boolean = Irreducible("boolean", func(v *ir.Node) bool { return typeOf(v) == ir.BoolType })
	// Number rejects NaN and the infinities.
	Number = Irreducible("number", func(v *ir.Node) bool { return v != nil && v.IsFinite() })

	// Obj accepts any object which is not an array.
	Obj      = Irreducible("Object", func(v *ir.Node) bool { return typeOf(v) == ir.ObjectType })
	Arr      = Irreducible("Array", func(v *ir.Node) bool { return typeOf(v) == ir.ArrayType })
	Function = Irreducible("Function", func(v *ir.Node) bool { return typeOf(v) == ir.FuncType })
)

// Irreducibles returns the built in leaf types keyed by name.
func Irreducibles() map[string]*IrreducibleType {
	res := map[string]*IrreducibleType{}
	for _, t := range []*IrreducibleType{Nil, Null, Void, Any, String, Boolean, Number, Obj, Arr, Function} {
		res[t.name] = t
	}
	return res
}
