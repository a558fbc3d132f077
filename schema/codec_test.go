package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/runtype/ir"
)

func TestMarshal(t *testing.T) {
	decls := fromSource(t, `type A = ?string;`)
	got, err := Marshal(decls)
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "tag": "TypeAlias",
    "name": "A",
    "type": {
      "tag": "MaybeType",
      "type": {
        "tag": "IrreducibleType",
        "name": "string"
      }
    }
  }
]
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMarshalLiteralAndMapping(t *testing.T) {
	decls := fromSource(t, `export type A = { [key: string]: 1 };`)
	got, err := Marshal(decls)
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "tag": "ExportNamedDeclaration",
    "declaration": {
      "tag": "TypeAlias",
      "name": "A",
      "type": {
        "tag": "MappingType",
        "domain": {
          "tag": "IrreducibleType",
          "name": "string"
        },
        "codomain": {
          "tag": "LiteralType",
          "value": 1,
          "kind": "number"
        }
      }
    }
  }
]
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

const roundTripSource = `
// recursive
export type Tree = { value: number, children: Array<Tree> }
type A = {| z: 'z', a: ?boolean, m: { [k: string]: [string, number] } |}
type U = 1 | "one" | false | A & Tree
type K = $Keys<A>
type S = $Shape<A>
type P = $Refinement<number, "value > 0", "Positive">
type R = $Refinement<string, "len(value) > 0">
`

func TestRoundTrip(t *testing.T) {
	decls := fromSource(t, roundTripSource)
	for _, marshal := range []func([]Decl) ([]byte, error){Marshal, MarshalYAML} {
		d, err := marshal(decls)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Unmarshal(d)
		if err != nil {
			t.Fatalf("%v\n%s", err, d)
		}
		if diff := cmp.Diff(decls, back); diff != "" {
			t.Errorf("(-want +got):\n%s\n%s", diff, d)
		}
	}
}

func TestUnmarshalSingle(t *testing.T) {
	decls, err := Unmarshal([]byte(`{"tag": "TypeAlias", "name": "A", "type": {"tag": "GenericType", "name": "B"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Decl{alias("A", &GenericType{Name: "B"})}, decls); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`[{"tag": "Nope"}]`, ErrTag},
		{`"x"`, ErrField},
		{`[{"tag": "TypeAlias", "name": "A"}]`, ErrField},
		{`[{"tag": "TypeAlias", "name": 1, "type": {"tag": "IrreducibleType", "name": "string"}}]`, ErrField},
		{`[{"tag": "TypeAlias", "name": "A", "type": {"tag": "LiteralType", "value": 1, "kind": "string"}}]`, ErrField},
		{`[{"tag": "TypeAlias", "name": "A", "type": {"tag": "UnionType", "types": {}}}]`, ErrField},
		{`[{"tag": "TypeAlias", "name": "A", "type": {"tag": "RecursionType", "self": {"tag": "IrreducibleType", "name": "x"}, "type": {"tag": "GenericType", "name": "A"}}}]`, ErrField},
		{`[{"tag": "ExportNamedDeclaration", "declaration": {"tag": "ExportNamedDeclaration"}}]`, ErrTag},
		{`{"a": [}`, ir.ErrDecode},
	}
	for _, tt := range tests {
		_, err := Unmarshal([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.err)
		}
	}
}
