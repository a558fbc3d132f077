package runtype

import "github.com/signadot/runtype/ir"

// InstanceOfType accepts objects created from a class or one of its
// subclasses.
type InstanceOfType struct {
	name  string
	class *ir.Class
}

func InstanceOf(class *ir.Class, name ...string) *InstanceOfType {
	if class == nil {
		panic(constructionErr("instanceOf: nil class"))
	}
	return &InstanceOfType{
		name:  pickName(name, func() string { return class.Name }),
		class: class,
	}
}

func (t *InstanceOfType) Name() string     { return t.name }
func (t *InstanceOfType) Kind() Kind       { return KindInstanceOf }
func (t *InstanceOfType) Class() *ir.Class { return t.class }

func (t *InstanceOfType) Validate(v *ir.Node, c Context) Validation {
	if v != nil && v.InstanceOf(t.class) {
		return success(v)
	}
	return failure(v, c)
}

// ClassOfType accepts the constructor of a class or of any subclass.
type ClassOfType struct {
	name  string
	class *ir.Class
	ref   *RefinementType
}

func ClassOf(class *ir.Class, name ...string) *ClassOfType {
	if class == nil {
		panic(constructionErr("classOf: nil class"))
	}
	isSubclass := func(v *ir.Node) bool {
		return v.Func != nil && v.Func.Class != nil && v.Func.Class.DerivesFrom(class)
	}
	return &ClassOfType{
		name:  pickName(name, func() string { return DefaultClassOfName(class) }),
		class: class,
		ref:   Refinement(Function, isSubclass),
	}
}

func (t *ClassOfType) Name() string     { return t.name }
func (t *ClassOfType) Kind() Kind       { return KindClassOf }
func (t *ClassOfType) Class() *ir.Class { return t.class }

func (t *ClassOfType) Validate(v *ir.Node, c Context) Validation {
	return t.ref.Validate(v, c)
}
