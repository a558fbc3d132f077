package runtype

import (
	"slices"

	"github.com/signadot/runtype/ir"
)

// MappingType checks every key of an object against a domain type and
// every value against a codomain type. A domain which changes a key
// renames it in the output. A renamed key which collides with another
// output key is an error at that key.
type MappingType struct {
	name     string
	domain   Type
	codomain Type
}

func Mapping(domain, codomain Type, name ...string) *MappingType {
	mustType("mapping domain", domain)
	mustType("mapping codomain", codomain)
	return &MappingType{
		name:     pickName(name, func() string { return DefaultMappingName(domain, codomain) }),
		domain:   domain,
		codomain: codomain,
	}
}

func (t *MappingType) Name() string   { return t.name }
func (t *MappingType) Kind() Kind     { return KindMapping }
func (t *MappingType) Domain() Type   { return t.domain }
func (t *MappingType) Codomain() Type { return t.codomain }

func (t *MappingType) Validate(v *ir.Node, c Context) Validation {
	if r := Obj.Validate(v, c); r.IsFailure() {
		return r
	}
	var (
		errs Errors
		out  *ir.Node
	)
	for i, k := range v.Fields {
		kv := ir.FromString(k)
		dr := t.domain.Validate(kv, c.Append(k, t.domain))
		cr := t.codomain.Validate(v.Values[i], c.Append(k, t.codomain))
		if dr.IsFailure() {
			errs = append(errs, dr.Errors()...)
		}
		if cr.IsFailure() {
			errs = append(errs, cr.Errors()...)
		}
		if len(errs) != 0 {
			continue
		}
		nk, nv := dr.Value(), cr.Value()
		if out == nil && (nk != kv || nv != v.Values[i]) {
			out = &ir.Node{
				Type:   ir.ObjectType,
				Class:  v.Class,
				Fields: append([]string{}, v.Fields[:i]...),
				Values: append([]*ir.Node{}, v.Values[:i]...),
			}
		}
		if out != nil {
			key := keyString(nk)
			if slices.Contains(out.Fields, key) {
				errs = append(errs, &ValidationError{Value: kv, Context: c.Append(k, t.domain)})
				continue
			}
			out.Set(key, nv)
		}
	}
	if len(errs) != 0 {
		return failures(errs)
	}
	if out != nil {
		return success(out)
	}
	return success(v)
}

func keyString(k *ir.Node) string {
	if k.Type == ir.StringType {
		return k.String
	}
	return ir.ToJSON(k)
}
