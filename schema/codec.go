package schema

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/runtype"
	"github.com/signadot/runtype/encode"
	"github.com/signadot/runtype/ir"
)

// Marshal renders decls as a JSON array indented by 2 spaces.
func Marshal(decls []Decl) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(decls, buf, encode.EncodeFormat(encode.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders decls as a YAML sequence.
func MarshalYAML(decls []Decl) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(decls, buf, encode.EncodeFormat(encode.YAMLFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes decls to w with the given encoding options.
func Encode(decls []Decl, w io.Writer, opts ...encode.EncodeOption) error {
	nodes := make([]*ir.Node, len(decls))
	for i, d := range decls {
		nodes[i] = DeclNode(d)
	}
	return encode.Encode(ir.FromSlice(nodes), w, opts...)
}

func record(tag Tag, kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(append([]ir.KeyVal{{Key: "tag", Val: ir.FromString(string(tag))}}, kvs...))
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

// DeclNode is the record of d.
func DeclNode(d Decl) *ir.Node {
	switch x := d.(type) {
	case *TypeAlias:
		return record(TagTypeAlias, kv("name", ir.FromString(x.Name)), kv("type", TypeNode(x.Type)))
	case *ExportNamedDeclaration:
		return record(TagExport, kv("declaration", DeclNode(x.Declaration)))
	}
	return ir.Null()
}

// TypeNode is the record of t.
func TypeNode(t Type) *ir.Node {
	switch x := t.(type) {
	case *LiteralType:
		var v *ir.Node
		switch lv := x.Value.(type) {
		case string:
			v = ir.FromString(lv)
		case float64:
			v = ir.FromFloat(lv)
		case bool:
			v = ir.FromBool(lv)
		default:
			v = ir.Null()
		}
		return record(TagLiteral, kv("value", v), kv("kind", ir.FromString(string(x.Kind))))
	case *IrreducibleType:
		return record(TagIrreducible, kv("name", ir.FromString(x.Name)))
	case *GenericType:
		return record(TagGeneric, kv("name", ir.FromString(x.Name)))
	case *ObjectType:
		return record(TagObject, kv("props", propsNode(x.Props)))
	case *ExactType:
		return record(TagExact, kv("props", propsNode(x.Props)))
	case *ShapeType:
		return record(TagShape, kv("type", TypeNode(x.Type)))
	case *KeysType:
		return record(TagKeys, kv("type", TypeNode(x.Type)))
	case *ArrayType:
		return record(TagArray, kv("type", TypeNode(x.Type)))
	case *MaybeType:
		return record(TagMaybe, kv("type", TypeNode(x.Type)))
	case *UnionType:
		return record(TagUnion, kv("types", typesNode(x.Types)))
	case *IntersectionType:
		return record(TagIntersection, kv("types", typesNode(x.Types)))
	case *TupleType:
		return record(TagTuple, kv("types", typesNode(x.Types)))
	case *MappingType:
		return record(TagMapping, kv("domain", TypeNode(x.Domain)), kv("codomain", TypeNode(x.Codomain)))
	case *RecursionType:
		return record(TagRecursion, kv("self", TypeNode(x.Self)), kv("type", TypeNode(x.Type)))
	case *RefinementType:
		kvs := []ir.KeyVal{kv("type", TypeNode(x.Type)), kv("predicate", ir.FromString(x.Predicate))}
		if x.Name != "" {
			kvs = append(kvs, kv("name", ir.FromString(x.Name)))
		}
		return record(TagRefinement, kvs...)
	}
	return ir.Null()
}

func propsNode(ps []Prop) *ir.Node {
	kvs := make([]ir.KeyVal, len(ps))
	for i, p := range ps {
		kvs[i] = kv(p.Key, TypeNode(p.Type))
	}
	return ir.FromKeyVals(kvs)
}

func typesNode(ts []Type) *ir.Node {
	res := make([]*ir.Node, len(ts))
	for i, t := range ts {
		res[i] = TypeNode(t)
	}
	return ir.FromSlice(res)
}

// Unmarshal decodes JSON or YAML declarations: a sequence of records, or
// a single record.
func Unmarshal(d []byte) ([]Decl, error) {
	node, err := ir.Decode(d)
	if err != nil {
		return nil, err
	}
	return DeclsFromNode(node)
}

func DeclsFromNode(node *ir.Node) ([]Decl, error) {
	if node.Type == ir.ObjectType {
		d, err := DeclFromNode(node)
		if err != nil {
			return nil, err
		}
		return []Decl{d}, nil
	}
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected declarations, got %s", ErrField, node.Type)
	}
	res := make([]Decl, len(node.Values))
	for i, v := range node.Values {
		d, err := DeclFromNode(v)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		res[i] = d
	}
	return res, nil
}

func tagOf(n *ir.Node) (Tag, error) {
	if n == nil || n.Type != ir.ObjectType {
		return "", fmt.Errorf("%w: expected record", ErrField)
	}
	s, err := stringField(n, "tag")
	return Tag(s), err
}

func field(n *ir.Node, name string) (*ir.Node, error) {
	v := ir.Get(n, name)
	if v == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrField, name)
	}
	return v, nil
}

func stringField(n *ir.Node, name string) (string, error) {
	v, err := field(n, name)
	if err != nil {
		return "", err
	}
	if v.Type != ir.StringType {
		return "", fmt.Errorf("%w: %q must be a string", ErrField, name)
	}
	return v.String, nil
}

func DeclFromNode(n *ir.Node) (Decl, error) {
	tag, err := tagOf(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagTypeAlias:
		return aliasFromNode(n)
	case TagExport:
		dn, err := field(n, "declaration")
		if err != nil {
			return nil, err
		}
		a, err := aliasFromNode(dn)
		if err != nil {
			return nil, err
		}
		return &ExportNamedDeclaration{Declaration: a}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrTag, tag)
}

func aliasFromNode(n *ir.Node) (*TypeAlias, error) {
	tag, err := tagOf(n)
	if err != nil {
		return nil, err
	}
	if tag != TagTypeAlias {
		return nil, fmt.Errorf("%w %q, expected %s", ErrTag, tag, TagTypeAlias)
	}
	name, err := stringField(n, "name")
	if err != nil {
		return nil, err
	}
	tn, err := field(n, "type")
	if err != nil {
		return nil, err
	}
	t, err := TypeFromNode(tn)
	if err != nil {
		return nil, fmt.Errorf("type %s: %w", name, err)
	}
	return &TypeAlias{Name: name, Type: t}, nil
}

func typeField(n *ir.Node, name string) (Type, error) {
	v, err := field(n, name)
	if err != nil {
		return nil, err
	}
	return TypeFromNode(v)
}

func typesField(n *ir.Node) ([]Type, error) {
	v, err := field(n, "types")
	if err != nil {
		return nil, err
	}
	if v.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: \"types\" must be an array", ErrField)
	}
	res := make([]Type, len(v.Values))
	for i, e := range v.Values {
		t, err := TypeFromNode(e)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

func propsField(n *ir.Node) ([]Prop, error) {
	v, err := field(n, "props")
	if err != nil {
		return nil, err
	}
	if v.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: \"props\" must be an object", ErrField)
	}
	res := make([]Prop, len(v.Fields))
	for i, k := range v.Fields {
		t, err := TypeFromNode(v.Values[i])
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", k, err)
		}
		res[i] = Prop{Key: k, Type: t}
	}
	return res, nil
}

// TypeFromNode decodes a type record.
func TypeFromNode(n *ir.Node) (Type, error) {
	tag, err := tagOf(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagLiteral:
		return literalFromNode(n)
	case TagIrreducible:
		name, err := stringField(n, "name")
		if err != nil {
			return nil, err
		}
		return &IrreducibleType{Name: name}, nil
	case TagGeneric:
		name, err := stringField(n, "name")
		if err != nil {
			return nil, err
		}
		return &GenericType{Name: name}, nil
	case TagObject, TagExact:
		ps, err := propsField(n)
		if err != nil {
			return nil, err
		}
		if tag == TagExact {
			return &ExactType{Props: ps}, nil
		}
		return &ObjectType{Props: ps}, nil
	case TagShape, TagKeys, TagArray, TagMaybe:
		t, err := typeField(n, "type")
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagShape:
			return &ShapeType{Type: t}, nil
		case TagKeys:
			return &KeysType{Type: t}, nil
		case TagArray:
			return &ArrayType{Type: t}, nil
		}
		return &MaybeType{Type: t}, nil
	case TagUnion, TagIntersection, TagTuple:
		ts, err := typesField(n)
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagUnion:
			return &UnionType{Types: ts}, nil
		case TagIntersection:
			return &IntersectionType{Types: ts}, nil
		}
		return &TupleType{Types: ts}, nil
	case TagMapping:
		d, err := typeField(n, "domain")
		if err != nil {
			return nil, err
		}
		c, err := typeField(n, "codomain")
		if err != nil {
			return nil, err
		}
		return &MappingType{Domain: d, Codomain: c}, nil
	case TagRecursion:
		self, err := typeField(n, "self")
		if err != nil {
			return nil, err
		}
		g, ok := self.(*GenericType)
		if !ok {
			return nil, fmt.Errorf("%w: recursion self must be a %s", ErrField, TagGeneric)
		}
		t, err := typeField(n, "type")
		if err != nil {
			return nil, err
		}
		return &RecursionType{Self: g, Type: t}, nil
	case TagRefinement:
		t, err := typeField(n, "type")
		if err != nil {
			return nil, err
		}
		pred, err := stringField(n, "predicate")
		if err != nil {
			return nil, err
		}
		r := &RefinementType{Type: t, Predicate: pred}
		if ir.Has(n, "name") {
			if r.Name, err = stringField(n, "name"); err != nil {
				return nil, err
			}
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w %q", ErrTag, tag)
}

func literalFromNode(n *ir.Node) (Type, error) {
	v, err := field(n, "value")
	if err != nil {
		return nil, err
	}
	res := &LiteralType{}
	switch v.Type {
	case ir.StringType:
		res.Value, res.Kind = v.String, runtype.StringLiteral
	case ir.NumberType:
		res.Value, res.Kind = v.Number, runtype.NumberLiteral
	case ir.BoolType:
		res.Value, res.Kind = v.Bool, runtype.BooleanLiteral
	default:
		return nil, fmt.Errorf("%w: literal value must be a string, number or boolean", ErrField)
	}
	if ir.Has(n, "kind") {
		kind, err := stringField(n, "kind")
		if err != nil {
			return nil, err
		}
		if runtype.LiteralKind(kind) != res.Kind {
			return nil, fmt.Errorf("%w: literal kind %q does not match value %s", ErrField, kind, ir.ToJSON(v))
		}
	}
	return res, nil
}
