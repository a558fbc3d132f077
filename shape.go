package runtype

import "github.com/signadot/runtype/ir"

// ShapeType is a partial view of an object type: declared keys which are
// present are checked, absent ones are skipped, and undeclared keys are
// rejected.
type ShapeType struct {
	name  string
	inner Type
	props Props
}

// Shape panics unless t declares props, possibly through Maybe,
// Refinement or Recursion wrappers.
func Shape(t Type, name ...string) *ShapeType {
	mustType("$shape", t)
	props, ok := propsOf(t)
	if !ok {
		panic(constructionErr("$shape: %s (%s) declares no props", t.Name(), t.Kind()))
	}
	return &ShapeType{
		name:  pickName(name, func() string { return DefaultShapeName(t) }),
		inner: t,
		props: props,
	}
}

func (t *ShapeType) Name() string { return t.name }
func (t *ShapeType) Kind() Kind   { return KindShape }
func (t *ShapeType) Type() Type   { return t.inner }
func (t *ShapeType) Props() Props { return append(Props(nil), t.props...) }

func (t *ShapeType) Validate(v *ir.Node, c Context) Validation {
	if r := Obj.Validate(v, c); r.IsFailure() {
		return r
	}
	out, errs := validateProps(t.props, v, c, true)
	errs = append(errs, additionalKeys(t.props, v, c)...)
	if len(errs) != 0 {
		return failures(errs)
	}
	return success(out)
}
