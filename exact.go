package runtype

import "github.com/signadot/runtype/ir"

// ExactType is an Object which rejects keys it does not declare.
type ExactType struct {
	name   string
	props  Props
	object *ObjectType
}

func Exact(props Props, name ...string) *ExactType {
	props = checkProps("$exact", props)
	n := pickName(name, func() string { return DefaultExactName(props) })
	return &ExactType{
		name:   n,
		props:  props,
		object: Object(props, n),
	}
}

func (t *ExactType) Name() string { return t.name }
func (t *ExactType) Kind() Kind   { return KindExact }
func (t *ExactType) Props() Props { return append(Props(nil), t.props...) }

func (t *ExactType) Validate(v *ir.Node, c Context) Validation {
	r := t.object.Validate(v, c)
	if r.IsFailure() {
		return r
	}
	if errs := additionalKeys(t.props, v, c); len(errs) != 0 {
		return failures(errs)
	}
	return r
}
