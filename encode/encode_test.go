package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/runtype/ir"
)

type encodeTest struct {
	in   string
	json string
	yaml string
}

var encodeTests = []encodeTest{
	{
		in:   `1`,
		json: "1",
		yaml: "1",
	},
	{
		in:   `"true"`,
		json: `"true"`,
		yaml: `"true"`,
	},
	{
		in:   `{}`,
		json: "{}",
		yaml: "{}",
	},
	{
		in:   `{"b": 1, "a": [true, null, "x y"]}`,
		json: "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null,\n    \"x y\"\n  ]\n}",
		yaml: "b: 1\na:\n  - true\n  - null\n  - x y",
	},
	{
		in:   `[{"a": 1, "b": {"c": [1, 2]}}, [], [[3]]]`,
		json: "[\n  {\n    \"a\": 1,\n    \"b\": {\n      \"c\": [\n        1,\n        2\n      ]\n    }\n  },\n  [],\n  [\n    [\n      3\n    ]\n  ]\n]",
		yaml: "- a: 1\n  b:\n    c:\n      - 1\n      - 2\n- []\n- - - 3",
	},
	{
		in:   `{"k: v": "-x", "n": "12", "s": ""}`,
		json: "{\n  \"k: v\": \"-x\",\n  \"n\": \"12\",\n  \"s\": \"\"\n}",
		yaml: "\"k: v\": \"-x\"\n\"n\": \"12\"\ns: \"\"",
	},
}

func TestEncode(t *testing.T) {
	for i := range encodeTests {
		et := &encodeTests[i]
		node, err := ir.ParseJSON([]byte(et.in))
		if err != nil {
			t.Fatalf("could not parse %q: %v", et.in, err)
		}
		if diff := cmp.Diff(et.json, MustString(node)); diff != "" {
			t.Errorf("json of %s (-want +got):\n%s", et.in, diff)
		}
		if diff := cmp.Diff(et.yaml, MustString(node, EncodeFormat(YAMLFormat))); diff != "" {
			t.Errorf("yaml of %s (-want +got):\n%s", et.in, diff)
		}
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	for i := range encodeTests {
		et := &encodeTests[i]
		node, err := ir.ParseJSON([]byte(et.in))
		if err != nil {
			t.Fatal(err)
		}
		back, err := ir.Decode([]byte(MustString(node, EncodeFormat(YAMLFormat))))
		if err != nil {
			t.Errorf("could not decode yaml of %s: %v", et.in, err)
			continue
		}
		if !ir.Equal(node, back) {
			t.Errorf("yaml of %s decoded as %s", et.in, ir.ToJSON(back))
		}
	}
}

func TestEncodeWire(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Undefined()})},
		{Key: "f", Val: ir.FromFunc("f", 0)},
		{Key: "u", Val: ir.Undefined()},
	})
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		got := MustString(node, EncodeFormat(f), EncodeWire(true))
		if got != `{"a":[1,null]}` {
			t.Errorf("%s wire: %q", f, got)
		}
	}
}

func TestEncodeNilChildren(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{nil, ir.FromInt(1)})},
		{Key: "b", Val: nil},
	})
	tests := []struct {
		opts []EncodeOption
		want string
	}{
		{[]EncodeOption{EncodeWire(true)}, `{"a":[null,1]}`},
		{[]EncodeOption{EncodeFormat(YAMLFormat)}, "a:\n  - null\n  - 1"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, MustString(node, tt.opts...)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	colors := NewColors()
	colors.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	buf := bytes.NewBuffer(nil)
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("s")})
	if err := Encode(node, buf, EncodeColors(colors), EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `[<1>,"s"]` {
		t.Errorf("got %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("y")
	if err != nil || f != YAMLFormat {
		t.Errorf("got %v %v", f, err)
	}
	if _, err := ParseFormat("tony"); err == nil {
		t.Errorf("expected error")
	}
	if YAMLFormat.Suffix() != ".yaml" || JSONFormat.Suffix() != ".json" {
		t.Errorf("bad suffixes")
	}
}
