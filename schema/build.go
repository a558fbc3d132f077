package schema

import (
	"errors"
	"fmt"

	"github.com/signadot/runtype"
	"github.com/signadot/runtype/debug"
)

// Build interprets decls as runtime types keyed by alias name.
//
// A GenericType resolves to the innermost enclosing recursion of that
// name, then to another alias, then to reg. Aliases may refer to aliases
// declared after them; a cycle of aliases which does not pass through a
// RecursionType is an error. A nil reg means Builtins().
func Build(decls []Decl, reg *Registry) (map[string]runtype.Type, error) {
	if reg == nil {
		reg = Builtins()
	}
	b := &builder{
		reg:     reg,
		aliases: make(map[string]*TypeAlias, len(decls)),
		built:   make(map[string]runtype.Type, len(decls)),
		active:  map[string]bool{},
	}
	for _, d := range decls {
		a := d.Alias()
		if _, dup := b.aliases[a.Name]; dup {
			return nil, &BuildError{Alias: a.Name, Err: ErrDuplicate}
		}
		b.aliases[a.Name] = a
	}
	for _, d := range decls {
		if _, err := b.alias(d.Alias().Name); err != nil {
			return nil, err
		}
	}
	return b.built, nil
}

// BuildType interprets a single schema type.
func BuildType(t Type, reg *Registry) (runtype.Type, error) {
	if reg == nil {
		reg = Builtins()
	}
	b := &builder{reg: reg, built: map[string]runtype.Type{}, active: map[string]bool{}}
	return b.build(t, "")
}

type scope struct {
	name string
	self runtype.Type
}

type builder struct {
	reg     *Registry
	aliases map[string]*TypeAlias
	built   map[string]runtype.Type
	active  map[string]bool
	selves  []scope
}

func (b *builder) alias(name string) (runtype.Type, error) {
	if t, ok := b.built[name]; ok {
		return t, nil
	}
	if b.active[name] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, name)
	}
	a := b.aliases[name]
	b.active[name] = true
	defer delete(b.active, name)
	t, err := b.build(a.Type, name)
	if err != nil {
		var be *BuildError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, &BuildError{Alias: name, Err: err}
	}
	if debug.Build() {
		debug.Logf("built %s as %s (%s)\n", name, t.Name(), t.Kind())
	}
	b.built[name] = t
	return t, nil
}

func (b *builder) resolve(name string) (runtype.Type, error) {
	for i := len(b.selves) - 1; i >= 0; i-- {
		if b.selves[i].name == name {
			return b.selves[i].self, nil
		}
	}
	if _, ok := b.aliases[name]; ok {
		return b.alias(name)
	}
	if t := b.reg.Lookup(name); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
}

func (b *builder) list(ts []Type) ([]runtype.Type, error) {
	res := make([]runtype.Type, len(ts))
	for i, t := range ts {
		rt, err := b.build(t, "")
		if err != nil {
			return nil, err
		}
		res[i] = rt
	}
	return res, nil
}

func (b *builder) props(ps []Prop) (runtype.Props, error) {
	res := make(runtype.Props, len(ps))
	for i, p := range ps {
		rt, err := b.build(p.Type, "")
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", p.Key, err)
		}
		res[i] = runtype.Prop{Key: p.Key, Type: rt}
	}
	return res, nil
}

// construct turns construction panics into errors.
func construct(f func() runtype.Type) (t runtype.Type, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, runtype.ErrConstruction) {
				panic(r)
			}
			err = fmt.Errorf("%w: %w", ErrSchema, e)
		}
	}()
	return f(), nil
}

// build builds t, naming it name if name is not empty and t is Named.
func (b *builder) build(t Type, name string) (runtype.Type, error) {
	var names []string
	if name != "" && Named(t) {
		names = []string{name}
	}
	switch x := t.(type) {
	case *LiteralType:
		return literal(x)
	case *IrreducibleType:
		if rt := b.reg.Lookup(x.Name); rt != nil {
			return rt, nil
		}
		return nil, fmt.Errorf("%w: irreducible %q", ErrUnknownType, x.Name)
	case *GenericType:
		return b.resolve(x.Name)
	case *ObjectType:
		ps, err := b.props(x.Props)
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Object(ps, names...) })
	case *ExactType:
		ps, err := b.props(x.Props)
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Exact(ps, names...) })
	case *ShapeType:
		inner, err := b.build(x.Type, "")
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Shape(inner, names...) })
	case *KeysType:
		inner, err := b.build(x.Type, "")
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Keys(inner, names...) })
	case *ArrayType:
		elem, err := b.build(x.Type, "")
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Array(elem, names...) })
	case *MaybeType:
		inner, err := b.build(x.Type, "")
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Maybe(inner, names...) })
	case *UnionType:
		ts, err := b.list(x.Types)
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Union(ts, names...) })
	case *IntersectionType:
		ts, err := b.list(x.Types)
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Intersection(ts, names...) })
	case *TupleType:
		ts, err := b.list(x.Types)
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Tuple(ts, names...) })
	case *MappingType:
		d, err := b.build(x.Domain, "")
		if err != nil {
			return nil, err
		}
		c, err := b.build(x.Codomain, "")
		if err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return runtype.Mapping(d, c, names...) })
	case *RefinementType:
		inner, err := b.build(x.Type, "")
		if err != nil {
			return nil, err
		}
		if _, err := compilePredicate(x.Predicate); err != nil {
			return nil, err
		}
		return construct(func() runtype.Type { return Refine(inner, x.Predicate, RefinementName(x, names...)) })
	case *RecursionType:
		return b.recursion(x)
	case nil:
		return nil, fmt.Errorf("%w: missing type", ErrField)
	}
	return nil, fmt.Errorf("%w %s", ErrTag, t.Tag())
}

// RefinementName is the explicit name of a refinement: its declared
// name, else the alias name if any. An empty result means the default.
func RefinementName(x *RefinementType, alias ...string) string {
	if x.Name != "" {
		return x.Name
	}
	if len(alias) != 0 {
		return alias[0]
	}
	return ""
}

func (b *builder) recursion(x *RecursionType) (runtype.Type, error) {
	if x.Self == nil || x.Self.Name == "" {
		return nil, fmt.Errorf("%w: recursion without self", ErrField)
	}
	var defErr error
	rt, err := construct(func() runtype.Type {
		return runtype.Recursion(x.Self.Name, func(self runtype.Type) runtype.Type {
			b.selves = append(b.selves, scope{name: x.Self.Name, self: self})
			defer func() { b.selves = b.selves[:len(b.selves)-1] }()
			def, err := b.build(x.Type, "")
			if err != nil {
				defErr = err
				return self
			}
			return def
		})
	})
	if defErr != nil {
		return nil, defErr
	}
	return rt, err
}

func literal(x *LiteralType) (runtype.Type, error) {
	switch v := x.Value.(type) {
	case string:
		if x.Kind == runtype.StringLiteral {
			return runtype.Literal(v), nil
		}
	case float64:
		if x.Kind == runtype.NumberLiteral {
			return runtype.Literal(v), nil
		}
	case bool:
		if x.Kind == runtype.BooleanLiteral {
			return runtype.Literal(v), nil
		}
	}
	return nil, fmt.Errorf("%w: literal %v of kind %q", ErrField, x.Value, x.Kind)
}
