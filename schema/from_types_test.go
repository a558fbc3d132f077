package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/runtype"
	"github.com/signadot/runtype/parse"
)

func fromSource(t *testing.T, src string) []Decl {
	t.Helper()
	decls, err := fromSourceErr(src)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return decls
}

func fromSourceErr(src string) ([]Decl, error) {
	prog, err := parse.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	return FromTypes(prog)
}

var (
	tString = &IrreducibleType{Name: "string"}
	tNumber = &IrreducibleType{Name: "number"}
)

func alias(name string, t Type) Decl {
	return &TypeAlias{Name: name, Type: t}
}

type fromTypesTest struct {
	in   string
	want []Decl
}

var fromTypesTests = []fromTypesTest{
	{
		in:   `type A = string & number;`,
		want: []Decl{alias("A", &IntersectionType{Types: []Type{tString, tNumber}})},
	},
	{
		in:   `type A = [string, number];`,
		want: []Decl{alias("A", &TupleType{Types: []Type{tString, tNumber}})},
	},
	{
		in:   `type A = string | number;`,
		want: []Decl{alias("A", &UnionType{Types: []Type{tString, tNumber}})},
	},
	{
		in:   `export type A = any;`,
		want: []Decl{&ExportNamedDeclaration{Declaration: &TypeAlias{Name: "A", Type: &IrreducibleType{Name: "any"}}}},
	},
	{
		in:   `type A = Object; type F = Function`,
		want: []Decl{alias("A", &IrreducibleType{Name: "Object"}), alias("F", &IrreducibleType{Name: "Function"})},
	},
	{
		in:   `type A = ?string;`,
		want: []Decl{alias("A", &MaybeType{Type: tString})},
	},
	{
		in:   `type A = Array<string>; type B = number[]`,
		want: []Decl{alias("A", &ArrayType{Type: tString}), alias("B", &ArrayType{Type: tNumber})},
	},
	{
		in:   `type A = B;`,
		want: []Decl{alias("A", &GenericType{Name: "B"})},
	},
	{
		in: `type A = { name: string, age?: number, nick?: ?string }`,
		want: []Decl{alias("A", &ObjectType{Props: []Prop{
			{Key: "name", Type: tString},
			{Key: "age", Type: &MaybeType{Type: tNumber}},
			{Key: "nick", Type: &MaybeType{Type: tString}},
		}})},
	},
	{
		in:   `type A = {| name: string |}; type B = $Exact<{ name: string }>`,
		want: []Decl{alias("A", &ExactType{Props: []Prop{{Key: "name", Type: tString}}}), alias("B", &ExactType{Props: []Prop{{Key: "name", Type: tString}}})},
	},
	{
		in:   `type A = { [key: string]: number };`,
		want: []Decl{alias("A", &MappingType{Domain: tString, Codomain: tNumber})},
	},
	{
		in: `type A = 'a' | 1 | true`,
		want: []Decl{alias("A", &UnionType{Types: []Type{
			&LiteralType{Value: "a", Kind: runtype.StringLiteral},
			&LiteralType{Value: 1.0, Kind: runtype.NumberLiteral},
			&LiteralType{Value: true, Kind: runtype.BooleanLiteral},
		}})},
	},
	{
		in: "// recursive\ntype T = { a: number, b: ?T }",
		want: []Decl{alias("T", &RecursionType{
			Self: &GenericType{Name: "T"},
			Type: &ObjectType{Props: []Prop{
				{Key: "a", Type: tNumber},
				{Key: "b", Type: &MaybeType{Type: &GenericType{Name: "T"}}},
			}},
		})},
	},
	{
		in: "/* recursive */ export type T = Array<T>",
		want: []Decl{&ExportNamedDeclaration{Declaration: &TypeAlias{Name: "T", Type: &RecursionType{
			Self: &GenericType{Name: "T"},
			Type: &ArrayType{Type: &GenericType{Name: "T"}},
		}}}},
	},
	{
		in:   `type K = $Keys<O>; type S = $Shape<O>`,
		want: []Decl{alias("K", &KeysType{Type: &GenericType{Name: "O"}}), alias("S", &ShapeType{Type: &GenericType{Name: "O"}})},
	},
	{
		in: `type P = $Refinement<number, "value > 0", "Positive">; type Q = $Refinement<string, "len(value) < 3">`,
		want: []Decl{
			alias("P", &RefinementType{Type: tNumber, Predicate: "value > 0", Name: "Positive"}),
			alias("Q", &RefinementType{Type: tString, Predicate: "len(value) < 3"}),
		},
	},
	{
		in:   `type V = void | null | mixed`,
		want: []Decl{alias("V", &UnionType{Types: []Type{&IrreducibleType{Name: "void"}, &IrreducibleType{Name: "null"}, &IrreducibleType{Name: "any"}}})},
	},
}

func TestFromTypes(t *testing.T) {
	for i := range fromTypesTests {
		tt := &fromTypesTests[i]
		got := fromSource(t, tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFromTypesErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`type A<T> = string`, ErrTypeParams},
		{`type A = Array<string, number>`, ErrTypeParams},
		{`type A = Array`, ErrTypeParams},
		{`type A = B<string>`, ErrTypeParams},
		{`type A = { [k: string]: number, [n: number]: string }`, ErrIndexers},
		{`type A = $Exact<string>`, ErrAnnotation},
		{`type A = $Refinement<number, 1>`, ErrAnnotation},
		{`type A = $Refinement<number, "value >">`, ErrPredicate},
	}
	for _, tt := range tests {
		_, err := fromSourceErr(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
			continue
		}
		var te *TransformError
		if !errors.As(err, &te) {
			t.Errorf("%q: expected *TransformError, got %T", tt.in, err)
			continue
		}
		if te.Alias != "A" {
			t.Errorf("%q: got alias %q", tt.in, te.Alias)
		}
	}
}
