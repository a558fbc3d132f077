// Package ast defines the syntax tree of type annotation source.
//
// The tree is a closed sum: every [Statement] and [Annotation] is one of
// the types declared here.
package ast

import "github.com/signadot/runtype/token"

type Node interface {
	// Pos is the position of the first token of the node, nil for nodes
	// built by hand.
	Pos() *token.Pos
}

type Statement interface {
	Node
	statement()
}

type Annotation interface {
	Node
	annotation()
}

// At records the position of a node.
type At struct {
	P *token.Pos
}

func (a At) Pos() *token.Pos { return a.P }

type Program struct {
	Body []Statement
}

type Comment struct {
	At
	Value string
	Block bool
}

type Identifier struct {
	At
	Name string
}

type TypeAlias struct {
	At
	ID             *Identifier
	TypeParameters []*Identifier
	Right          Annotation
	// LeadingComments are the comments between the previous statement
	// and this one.
	LeadingComments []*Comment
}

type ExportNamedDeclaration struct {
	At
	Declaration     *TypeAlias
	LeadingComments []*Comment
}

func (*TypeAlias) statement()              {}
func (*ExportNamedDeclaration) statement() {}

// Alias returns the alias a statement declares.
func Alias(s Statement) *TypeAlias {
	switch x := s.(type) {
	case *TypeAlias:
		return x
	case *ExportNamedDeclaration:
		return x.Declaration
	}
	return nil
}

// GenericTypeAnnotation is a reference to a named type, possibly with
// type parameters, as in Array<string>.
type GenericTypeAnnotation struct {
	At
	ID             *Identifier
	TypeParameters []Annotation
}

type ObjectTypeProperty struct {
	At
	Key      *Identifier
	Value    Annotation
	Optional bool
}

// ObjectTypeIndexer is [id: Key]: Value.
type ObjectTypeIndexer struct {
	At
	ID    *Identifier
	Key   Annotation
	Value Annotation
}

type ObjectTypeAnnotation struct {
	At
	Properties []*ObjectTypeProperty
	Indexers   []*ObjectTypeIndexer
	Exact      bool
}

type StringTypeAnnotation struct{ At }
type NumberTypeAnnotation struct{ At }
type BooleanTypeAnnotation struct{ At }
type AnyTypeAnnotation struct{ At }
type MixedTypeAnnotation struct{ At }
type VoidTypeAnnotation struct{ At }
type NullLiteralTypeAnnotation struct{ At }

// NullableTypeAnnotation is ?T.
type NullableTypeAnnotation struct {
	At
	TypeAnnotation Annotation
}

// ArrayTypeAnnotation is T[].
type ArrayTypeAnnotation struct {
	At
	ElementType Annotation
}

type UnionTypeAnnotation struct {
	At
	Types []Annotation
}

type IntersectionTypeAnnotation struct {
	At
	Types []Annotation
}

type TupleTypeAnnotation struct {
	At
	Types []Annotation
}

type StringLiteralTypeAnnotation struct {
	At
	Value string
}

type NumberLiteralTypeAnnotation struct {
	At
	Value float64
	Raw   string
}

type BooleanLiteralTypeAnnotation struct {
	At
	Value bool
}

func (*GenericTypeAnnotation) annotation()        {}
func (*ObjectTypeAnnotation) annotation()         {}
func (*StringTypeAnnotation) annotation()         {}
func (*NumberTypeAnnotation) annotation()         {}
func (*BooleanTypeAnnotation) annotation()        {}
func (*AnyTypeAnnotation) annotation()            {}
func (*MixedTypeAnnotation) annotation()          {}
func (*VoidTypeAnnotation) annotation()           {}
func (*NullLiteralTypeAnnotation) annotation()    {}
func (*NullableTypeAnnotation) annotation()       {}
func (*ArrayTypeAnnotation) annotation()          {}
func (*UnionTypeAnnotation) annotation()          {}
func (*IntersectionTypeAnnotation) annotation()   {}
func (*TupleTypeAnnotation) annotation()          {}
func (*StringLiteralTypeAnnotation) annotation()  {}
func (*NumberLiteralTypeAnnotation) annotation()  {}
func (*BooleanLiteralTypeAnnotation) annotation() {}
