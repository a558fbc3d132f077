package runtype

import (
	"fmt"

	"github.com/signadot/runtype/ir"
)

// SelfType is the placeholder handed to a recursive definition. It
// forwards validation to the recursive type once that is bound.
type SelfType struct {
	name string
	cell *RecursionType
}

func (t *SelfType) Name() string { return t.name }
func (t *SelfType) Kind() Kind   { return KindRecursion }

func (t *SelfType) bound() *RecursionType {
	if t.cell == nil {
		panic(fmt.Errorf("%w: %s", ErrUnbound, t.name))
	}
	return t.cell
}

func (t *SelfType) Validate(v *ir.Node, c Context) Validation {
	return t.bound().Validate(v, c)
}

// RecursionType is a self referential type named name.
type RecursionType struct {
	name string
	self *SelfType
	def  Type
}

// Recursion builds a type whose definition refers to itself through the
// placeholder passed to definition. definition must only store the
// placeholder; validating against it before Recursion returns panics with
// ErrUnbound.
func Recursion(name string, definition func(self Type) Type) *RecursionType {
	if definition == nil {
		panic(constructionErr("recursion %q: nil definition", name))
	}
	self := &SelfType{name: name}
	def := definition(self)
	mustType("recursion "+name, def)
	res := &RecursionType{name: name, self: self, def: def}
	self.cell = res
	return res
}

func (t *RecursionType) Name() string     { return t.name }
func (t *RecursionType) Kind() Kind       { return KindRecursion }
func (t *RecursionType) Self() *SelfType  { return t.self }
func (t *RecursionType) Definition() Type { return t.def }

func (t *RecursionType) Validate(v *ir.Node, c Context) Validation {
	return t.def.Validate(v, c)
}
