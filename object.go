package runtype

import "github.com/signadot/runtype/ir"

// Prop is a declared object key and the type of its value.
type Prop struct {
	Key  string
	Type Type
}

// Props are declared in order; the order is kept in names and output.
type Props []Prop

func (ps Props) Get(key string) (Type, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Type, true
		}
	}
	return nil, false
}

func (ps Props) Has(key string) bool {
	_, ok := ps.Get(key)
	return ok
}

func (ps Props) Keys() []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.Key
	}
	return res
}

func checkProps(what string, props Props) Props {
	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if p.Type == nil {
			panic(constructionErr("%s: nil type for key %q", what, p.Key))
		}
		if seen[p.Key] {
			panic(constructionErr("%s: duplicate key %q", what, p.Key))
		}
		seen[p.Key] = true
	}
	return append(Props(nil), props...)
}

// ObjectType checks the declared keys of an object. Keys which are not
// declared pass through untouched.
type ObjectType struct {
	name  string
	props Props
}

func Object(props Props, name ...string) *ObjectType {
	props = checkProps("object", props)
	return &ObjectType{
		name:  pickName(name, func() string { return DefaultObjectName(props) }),
		props: props,
	}
}

func (t *ObjectType) Name() string { return t.name }
func (t *ObjectType) Kind() Kind   { return KindObject }
func (t *ObjectType) Props() Props { return append(Props(nil), t.props...) }

func (t *ObjectType) Validate(v *ir.Node, c Context) Validation {
	if r := Obj.Validate(v, c); r.IsFailure() {
		return r
	}
	out, errs := validateProps(t.props, v, c, false)
	if len(errs) != 0 {
		return failures(errs)
	}
	return success(out)
}

// validateProps checks each prop of o, returning o itself when no prop
// value changed. With presentOnly, absent keys are skipped; otherwise
// they are checked as undefined and only added to the output if their
// type produced a different value.
func validateProps(props Props, o *ir.Node, c Context, presentOnly bool) (*ir.Node, Errors) {
	var (
		errs Errors
		out  *ir.Node
	)
	for _, p := range props {
		var pv *ir.Node
		if i := o.Index(p.Key); i >= 0 {
			pv = o.Values[i]
		} else if presentOnly {
			continue
		} else {
			pv = ir.Undefined()
		}
		r := p.Type.Validate(pv, c.Append(p.Key, p.Type))
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
			continue
		}
		if nv := r.Value(); nv != pv {
			if out == nil {
				out = o.ShallowCopy()
			}
			out.Set(p.Key, nv)
		}
	}
	if out == nil {
		out = o
	}
	return out, errs
}

// additionalKeys reports one error per key of o which props does not
// declare, at (key, nil).
func additionalKeys(props Props, o *ir.Node, c Context) Errors {
	var errs Errors
	for i, k := range o.Fields {
		if props.Has(k) {
			continue
		}
		errs = append(errs, &ValidationError{
			Value:   o.Values[i],
			Context: c.Append(k, Nil),
		})
	}
	return errs
}
