package schema

import "github.com/signadot/runtype"

// Tag identifies the kind of a schema record, and is the value of its
// "tag" field.
type Tag string

const (
	TagLiteral      Tag = "LiteralType"
	TagIrreducible  Tag = "IrreducibleType"
	TagObject       Tag = "ObjectType"
	TagExact        Tag = "$ExactType"
	TagShape        Tag = "$ShapeType"
	TagKeys         Tag = "$KeysType"
	TagArray        Tag = "ArrayType"
	TagUnion        Tag = "UnionType"
	TagIntersection Tag = "IntersectionType"
	TagTuple        Tag = "TupleType"
	TagMapping      Tag = "MappingType"
	TagMaybe        Tag = "MaybeType"
	TagRecursion    Tag = "RecursionType"
	TagGeneric      Tag = "GenericType"
	TagRefinement   Tag = "RefinementType"

	TagTypeAlias Tag = "TypeAlias"
	TagExport    Tag = "ExportNamedDeclaration"
)

// Type is a schema type record.
type Type interface {
	Tag() Tag
	schemaType()
}

// LiteralType has a Value which is a string, float64 or bool according
// to Kind.
type LiteralType struct {
	Value any
	Kind  runtype.LiteralKind
}

type IrreducibleType struct {
	Name string
}

type Prop struct {
	Key  string
	Type Type
}

type ObjectType struct {
	Props []Prop
}

type ExactType struct {
	Props []Prop
}

type ShapeType struct {
	Type Type
}

type KeysType struct {
	Type Type
}

type ArrayType struct {
	Type Type
}

type UnionType struct {
	Types []Type
}

type IntersectionType struct {
	Types []Type
}

type TupleType struct {
	Types []Type
}

type MappingType struct {
	Domain   Type
	Codomain Type
}

type MaybeType struct {
	Type Type
}

// GenericType refers to a type by name: another alias, the enclosing
// recursion, or a registered type.
type GenericType struct {
	Name string
}

type RecursionType struct {
	Self *GenericType
	Type Type
}

// RefinementType narrows Type with Predicate, an expression over value
// evaluating to a boolean.
type RefinementType struct {
	Type      Type
	Predicate string
	Name      string
}

func (*LiteralType) Tag() Tag      { return TagLiteral }
func (*IrreducibleType) Tag() Tag  { return TagIrreducible }
func (*ObjectType) Tag() Tag       { return TagObject }
func (*ExactType) Tag() Tag        { return TagExact }
func (*ShapeType) Tag() Tag        { return TagShape }
func (*KeysType) Tag() Tag         { return TagKeys }
func (*ArrayType) Tag() Tag        { return TagArray }
func (*UnionType) Tag() Tag        { return TagUnion }
func (*IntersectionType) Tag() Tag { return TagIntersection }
func (*TupleType) Tag() Tag        { return TagTuple }
func (*MappingType) Tag() Tag      { return TagMapping }
func (*MaybeType) Tag() Tag        { return TagMaybe }
func (*GenericType) Tag() Tag      { return TagGeneric }
func (*RecursionType) Tag() Tag    { return TagRecursion }
func (*RefinementType) Tag() Tag   { return TagRefinement }

func (*LiteralType) schemaType()      {}
func (*IrreducibleType) schemaType()  {}
func (*ObjectType) schemaType()       {}
func (*ExactType) schemaType()        {}
func (*ShapeType) schemaType()        {}
func (*KeysType) schemaType()         {}
func (*ArrayType) schemaType()        {}
func (*UnionType) schemaType()        {}
func (*IntersectionType) schemaType() {}
func (*TupleType) schemaType()        {}
func (*MappingType) schemaType()      {}
func (*MaybeType) schemaType()        {}
func (*GenericType) schemaType()      {}
func (*RecursionType) schemaType()    {}
func (*RefinementType) schemaType()   {}

// Decl is a top level declaration: a TypeAlias or an
// ExportNamedDeclaration.
type Decl interface {
	Tag() Tag
	Alias() *TypeAlias
}

type TypeAlias struct {
	Name string
	Type Type
}

type ExportNamedDeclaration struct {
	Declaration *TypeAlias
}

func (*TypeAlias) Tag() Tag              { return TagTypeAlias }
func (*ExportNamedDeclaration) Tag() Tag { return TagExport }

func (a *TypeAlias) Alias() *TypeAlias              { return a }
func (e *ExportNamedDeclaration) Alias() *TypeAlias { return e.Declaration }

// Exported reports whether d is exported.
func Exported(d Decl) bool {
	_, ok := d.(*ExportNamedDeclaration)
	return ok
}

// Named reports whether the runtime type built for t at the top of an
// alias carries the alias name. References and leaves keep their own
// names.
func Named(t Type) bool {
	switch t.(type) {
	case *GenericType, *IrreducibleType, *LiteralType, *RecursionType:
		return false
	}
	return true
}
