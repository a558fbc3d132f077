package schema

import (
	"fmt"
	"strings"

	"github.com/signadot/runtype"
	"github.com/signadot/runtype/ast"
	"github.com/signadot/runtype/token"
)

// FromTypes converts the aliases of prog to schema declarations.
//
// An alias whose leading comments mention "recursive" becomes a
// RecursionType over its own name. Aliases may not have type parameters.
func FromTypes(prog *ast.Program) ([]Decl, error) {
	res := make([]Decl, 0, len(prog.Body))
	for _, s := range prog.Body {
		d, err := fromStatement(s)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func fromStatement(s ast.Statement) (Decl, error) {
	switch x := s.(type) {
	case *ast.TypeAlias:
		return fromAlias(x, x.LeadingComments)
	case *ast.ExportNamedDeclaration:
		comments := append(append([]*ast.Comment(nil), x.LeadingComments...), x.Declaration.LeadingComments...)
		a, err := fromAlias(x.Declaration, comments)
		if err != nil {
			return nil, err
		}
		return &ExportNamedDeclaration{Declaration: a}, nil
	}
	return nil, fmt.Errorf("%w: statement %T", ErrAnnotation, s)
}

func fromAlias(a *ast.TypeAlias, comments []*ast.Comment) (*TypeAlias, error) {
	name := a.ID.Name
	if len(a.TypeParameters) != 0 {
		return nil, &TransformError{
			Alias: name,
			Pos:   a.TypeParameters[0].Pos(),
			Err:   fmt.Errorf("%w (expected 0)", ErrTypeParams),
		}
	}
	t, err := fromAnnotation(a.Right)
	if err != nil {
		if te, ok := err.(*TransformError); ok {
			te.Alias = name
			return nil, te
		}
		return nil, &TransformError{Alias: name, Pos: a.Pos(), Err: err}
	}
	if isRecursive(comments) {
		t = &RecursionType{Self: &GenericType{Name: name}, Type: t}
	}
	return &TypeAlias{Name: name, Type: t}, nil
}

func isRecursive(comments []*ast.Comment) bool {
	for _, c := range comments {
		if strings.Contains(c.Value, "recursive") {
			return true
		}
	}
	return false
}

func located(p *token.Pos, err error) error {
	if _, ok := err.(*TransformError); ok {
		return err
	}
	return &TransformError{Pos: p, Err: err}
}

func fromAnnotations(as []ast.Annotation) ([]Type, error) {
	res := make([]Type, len(as))
	for i, a := range as {
		t, err := fromAnnotation(a)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

func fromAnnotation(a ast.Annotation) (Type, error) {
	switch x := a.(type) {
	case *ast.GenericTypeAnnotation:
		return fromGeneric(x)
	case *ast.ObjectTypeAnnotation:
		return fromObject(x)
	case *ast.StringTypeAnnotation:
		return &IrreducibleType{Name: "string"}, nil
	case *ast.NumberTypeAnnotation:
		return &IrreducibleType{Name: "number"}, nil
	case *ast.BooleanTypeAnnotation:
		return &IrreducibleType{Name: "boolean"}, nil
	case *ast.AnyTypeAnnotation, *ast.MixedTypeAnnotation:
		return &IrreducibleType{Name: "any"}, nil
	case *ast.VoidTypeAnnotation:
		return &IrreducibleType{Name: "void"}, nil
	case *ast.NullLiteralTypeAnnotation:
		return &IrreducibleType{Name: "null"}, nil
	case *ast.NullableTypeAnnotation:
		t, err := fromAnnotation(x.TypeAnnotation)
		if err != nil {
			return nil, err
		}
		return &MaybeType{Type: t}, nil
	case *ast.ArrayTypeAnnotation:
		t, err := fromAnnotation(x.ElementType)
		if err != nil {
			return nil, err
		}
		return &ArrayType{Type: t}, nil
	case *ast.UnionTypeAnnotation:
		ts, err := fromAnnotations(x.Types)
		if err != nil {
			return nil, err
		}
		return &UnionType{Types: ts}, nil
	case *ast.IntersectionTypeAnnotation:
		ts, err := fromAnnotations(x.Types)
		if err != nil {
			return nil, err
		}
		return &IntersectionType{Types: ts}, nil
	case *ast.TupleTypeAnnotation:
		ts, err := fromAnnotations(x.Types)
		if err != nil {
			return nil, err
		}
		return &TupleType{Types: ts}, nil
	case *ast.StringLiteralTypeAnnotation:
		return &LiteralType{Value: x.Value, Kind: runtype.StringLiteral}, nil
	case *ast.NumberLiteralTypeAnnotation:
		return &LiteralType{Value: x.Value, Kind: runtype.NumberLiteral}, nil
	case *ast.BooleanLiteralTypeAnnotation:
		return &LiteralType{Value: x.Value, Kind: runtype.BooleanLiteral}, nil
	}
	var p *token.Pos
	if a != nil {
		p = a.Pos()
	}
	return nil, located(p, fmt.Errorf("%w %T", ErrAnnotation, a))
}

func fromGeneric(g *ast.GenericTypeAnnotation) (Type, error) {
	name := g.ID.Name
	params := g.TypeParameters
	arity := func(n int) error {
		if len(params) != n {
			return located(g.Pos(), fmt.Errorf("%w (expected %d) for %s", ErrTypeParams, n, name))
		}
		return nil
	}
	switch name {
	case "Object", "Function":
		if err := arity(0); err != nil {
			return nil, err
		}
		return &IrreducibleType{Name: name}, nil
	case "Array":
		if err := arity(1); err != nil {
			return nil, err
		}
		t, err := fromAnnotation(params[0])
		if err != nil {
			return nil, err
		}
		return &ArrayType{Type: t}, nil
	case "$Exact":
		if err := arity(1); err != nil {
			return nil, err
		}
		t, err := fromAnnotation(params[0])
		if err != nil {
			return nil, err
		}
		switch o := t.(type) {
		case *ObjectType:
			return &ExactType{Props: o.Props}, nil
		case *ExactType:
			return o, nil
		}
		return nil, located(params[0].Pos(), fmt.Errorf("%w: $Exact of %s", ErrAnnotation, t.Tag()))
	case "$Shape", "$Keys":
		if err := arity(1); err != nil {
			return nil, err
		}
		t, err := fromAnnotation(params[0])
		if err != nil {
			return nil, err
		}
		if name == "$Shape" {
			return &ShapeType{Type: t}, nil
		}
		return &KeysType{Type: t}, nil
	case "$Refinement":
		// $Refinement<T, "predicate"> or $Refinement<T, "predicate", "name">
		if len(params) != 2 && len(params) != 3 {
			return nil, located(g.Pos(), fmt.Errorf("%w (expected 2 or 3) for %s", ErrTypeParams, name))
		}
		t, err := fromAnnotation(params[0])
		if err != nil {
			return nil, err
		}
		lits := make([]string, 0, 2)
		for _, p := range params[1:] {
			s, ok := p.(*ast.StringLiteralTypeAnnotation)
			if !ok {
				return nil, located(p.Pos(), fmt.Errorf("%w: expected string literal", ErrAnnotation))
			}
			lits = append(lits, s.Value)
		}
		if _, err := compilePredicate(lits[0]); err != nil {
			return nil, located(params[1].Pos(), err)
		}
		r := &RefinementType{Type: t, Predicate: lits[0]}
		if len(lits) == 2 {
			r.Name = lits[1]
		}
		return r, nil
	}
	if err := arity(0); err != nil {
		return nil, err
	}
	return &GenericType{Name: name}, nil
}

func fromObject(o *ast.ObjectTypeAnnotation) (Type, error) {
	if n := len(o.Indexers); n > 0 {
		if n != 1 || len(o.Properties) != 0 {
			return nil, located(o.Pos(), ErrIndexers)
		}
		ix := o.Indexers[0]
		d, err := fromAnnotation(ix.Key)
		if err != nil {
			return nil, err
		}
		c, err := fromAnnotation(ix.Value)
		if err != nil {
			return nil, err
		}
		return &MappingType{Domain: d, Codomain: c}, nil
	}
	props := make([]Prop, 0, len(o.Properties))
	for _, p := range o.Properties {
		t, err := fromAnnotation(p.Value)
		if err != nil {
			return nil, err
		}
		if _, ok := t.(*MaybeType); p.Optional && !ok {
			t = &MaybeType{Type: t}
		}
		props = append(props, Prop{Key: p.Key.Name, Type: t})
	}
	if o.Exact {
		return &ExactType{Props: props}, nil
	}
	return &ObjectType{Props: props}, nil
}
