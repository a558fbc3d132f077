package runtype

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/runtype/ir"
)

func isPositive(v *ir.Node) bool {
	return v.Number > 0
}

func double(v *ir.Node) *ir.Node {
	return ir.FromFloat(v.Number * 2)
}

func triple(v *ir.Node) *ir.Node {
	return ir.FromFloat(v.Number * 3)
}

func upper(v *ir.Node) *ir.Node {
	return ir.FromString(strings.ToUpper(v.String))
}

func constKey(*ir.Node) *ir.Node {
	return ir.FromString("k")
}

func defaultZero(v *ir.Node) *ir.Node {
	if v.Type.IsNil() {
		return ir.FromInt(0)
	}
	return v
}

var (
	classA = ir.NewClass("A", nil)
	classB = ir.NewClass("B", classA)
	classC = ir.NewClass("C", nil)
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.ParseJSON([]byte(s))
	if err != nil {
		t.Fatalf("could not parse %q: %v", s, err)
	}
	return n
}

type validateTest struct {
	typ  Type
	in   string
	node *ir.Node
	// nil means success
	errs []string
}

var validateTests = []validateTest{
	{typ: String, in: `"s"`},
	{typ: String, in: `1`, errs: []string{"Invalid value 1 supplied to string"}},
	{typ: Number, in: `1.5`},
	{typ: Number, node: ir.FromFloat(math.Inf(1)), errs: []string{"Invalid value null supplied to number"}},
	{typ: Number, node: ir.FromFloat(math.NaN()), errs: []string{"Invalid value null supplied to number"}},
	{typ: Boolean, in: `"true"`, errs: []string{`Invalid value "true" supplied to boolean`}},
	{typ: Any, node: ir.Undefined()},
	{typ: Nil, in: `null`},
	{typ: Nil, node: ir.Undefined()},
	{typ: Nil, in: `0`, errs: []string{"Invalid value 0 supplied to nil"}},
	{typ: Null, node: ir.Undefined(), errs: []string{"Invalid value undefined supplied to null"}},
	{typ: Void, in: `null`, errs: []string{"Invalid value null supplied to void"}},
	{typ: Obj, in: `[]`, errs: []string{"Invalid value [] supplied to Object"}},
	{typ: Arr, in: `{}`, errs: []string{"Invalid value {} supplied to Array"}},
	{typ: Function, node: ir.FromFunc("f", 1)},
	{typ: Function, in: `{}`, errs: []string{"Invalid value {} supplied to Function"}},
	{typ: Literal("a"), in: `"a"`},
	{typ: Literal("a"), in: `"b"`, errs: []string{`Invalid value "b" supplied to "a"`}},
	{typ: Literal(2), in: `2`},
	{typ: Literal(true), in: `false`, errs: []string{"Invalid value false supplied to true"}},
	{
		typ:  Array(Number),
		in:   `[1, "s", true]`,
		errs: []string{`Invalid value "s" supplied to Array<number>/1: number`, `Invalid value true supplied to Array<number>/2: number`},
	},
	{typ: Array(Number), in: `1`, errs: []string{"Invalid value 1 supplied to Array<number>"}},
	{
		typ:  Object(Props{{"a", Object(Props{{"b", Number}})}}),
		in:   `{"a": {}}`,
		errs: []string{"Invalid value undefined supplied to { a: { b: number } }/a: { b: number }/b: number"},
	},
	{typ: Object(Props{{"a", String}}), in: `{"a": "s", "extra": 2}`},
	{
		typ:  Object(Props{{"a", String}, {"b", Number}}),
		in:   `{"a": 1, "b": "x"}`,
		errs: []string{"Invalid value 1 supplied to { a: string, b: number }/a: string", `Invalid value "x" supplied to { a: string, b: number }/b: number`},
	},
	{
		typ:  Exact(Props{{"a", String}}),
		in:   `{"a": "s", "extra": 2}`,
		errs: []string{"Invalid value 2 supplied to $Exact<{ a: string }>/extra: nil"},
	},
	{
		typ:  Exact(Props{{"a", String}}),
		in:   `{"a": 1, "extra": 2}`,
		errs: []string{"Invalid value 1 supplied to $Exact<{ a: string }>/a: string"},
	},
	{typ: Shape(Object(Props{{"a", String}, {"b", Number}})), in: `{"b": 1}`},
	{
		typ: Shape(Object(Props{{"a", String}, {"b", Number}})),
		in:  `{"b": "x", "c": 1}`,
		errs: []string{
			`Invalid value "x" supplied to $Shape<{ a: string, b: number }>/b: number`,
			"Invalid value 1 supplied to $Shape<{ a: string, b: number }>/c: nil",
		},
	},
	{typ: Union([]Type{String, Number}), in: `1`},
	{typ: Union([]Type{String, Number}), in: `true`, errs: []string{"Invalid value true supplied to (string | number)"}},
	{typ: Tuple([]Type{String, Number}), in: `["a", 1]`},
	{typ: Tuple([]Type{String, Number}), in: `["a", 1, 2]`},
	{typ: Tuple([]Type{String, Number}), in: `["a"]`, errs: []string{"Invalid value undefined supplied to [string, number]/1: number"}},
	{typ: Tuple([]Type{String, Maybe(Number)}), in: `["a"]`},
	{
		typ:  ExactTuple([]Type{String, Number}),
		in:   `["a", 1, 2, 3]`,
		errs: []string{"Invalid value 2 supplied to $Exact<[string, number]>/2: nil", "Invalid value 3 supplied to $Exact<[string, number]>/3: nil"},
	},
	{
		typ:  Intersection([]Type{Object(Props{{"a", Number}}), Object(Props{{"b", Number}})}),
		in:   `{"a": 1}`,
		errs: []string{"Invalid value undefined supplied to ({ a: number } & { b: number })/1: { b: number }/b: number"},
	},
	{typ: Intersection([]Type{Object(Props{{"a", Number}}), Object(Props{{"b", Number}})}), in: `{"a": 1, "b": 2}`},
	{typ: Maybe(String), in: `null`},
	{typ: Maybe(String), node: ir.Undefined()},
	{typ: Maybe(String), in: `1`, errs: []string{"Invalid value 1 supplied to ?string"}},
	{typ: Mapping(String, Number), in: `{"a": 1, "b": 2}`},
	{
		typ:  Mapping(String, Number),
		in:   `{"a": 1, "b": "x"}`,
		errs: []string{`Invalid value "x" supplied to { [key: string]: number }/b: number`},
	},
	{
		typ:  Mapping(Keys(Object(Props{{"a", Number}})), Number),
		in:   `{"a": 1, "b": 2}`,
		errs: []string{`Invalid value "b" supplied to { [key: $Keys<{ a: number }>]: number }/b: $Keys<{ a: number }>`},
	},
	{
		typ:  Mapping(Map(String, constKey, "K"), Number, "M"),
		in:   `{"a": 1, "b": 2}`,
		errs: []string{`Invalid value "b" supplied to M/b: K`},
	},
	{
		typ:  Mapping(Map(String, upper, "U"), Number, "M"),
		in:   `{"b": 1, "B": 2}`,
		errs: []string{`Invalid value "B" supplied to M/B: U`},
	},
	{typ: Refinement(Number, isPositive), in: `1`},
	{typ: Refinement(Number, isPositive), in: `-1`, errs: []string{"Invalid value -1 supplied to (number | isPositive)"}},
	{typ: Refinement(Number, isPositive), in: `"s"`, errs: []string{`Invalid value "s" supplied to (number | isPositive)`}},
	{typ: Keys(Object(Props{{"a", String}, {"b", Number}})), in: `"a"`},
	{
		typ:  Keys(Object(Props{{"a", String}, {"b", Number}})),
		in:   `"c"`,
		errs: []string{`Invalid value "c" supplied to $Keys<{ a: string, b: number }>`},
	},
	{typ: Keys(Maybe(Shape(Exact(Props{{"a", String}})))), in: `"a"`},
	{typ: InstanceOf(classA), node: ir.NewInstance(classB)},
	{typ: InstanceOf(classA), node: ir.NewInstance(classC), errs: []string{"Invalid value {} supplied to A"}},
	{typ: InstanceOf(classA), in: `{}`, errs: []string{"Invalid value {} supplied to A"}},
	{typ: ClassOf(classA), node: ir.FromClass(classA)},
	{typ: ClassOf(classA), node: ir.FromClass(classB)},
	{typ: ClassOf(classB), node: ir.FromClass(classA), errs: []string{"Invalid value A supplied to Class<B>"}},
	{typ: ClassOf(classA), node: ir.FromFunc("", 2), errs: []string{"Invalid value <function2> supplied to Class<A>"}},
	{typ: ClassOf(classA), in: `1`, errs: []string{"Invalid value 1 supplied to Class<A>"}},
	{typ: Object(Props{{"f", Function}}), in: `{"f": 1}`, errs: []string{"Invalid value 1 supplied to { f: Function }/f: Function"}},
	{typ: Object(nil, "Person"), in: `"p"`, errs: []string{`Invalid value "p" supplied to Person`}},
	{typ: Object(Props{{"a", Maybe(String)}}), node: ir.FromKeyVals([]ir.KeyVal{{Key: "a"}})},
	{typ: String, node: ir.FromKeyVals([]ir.KeyVal{{Key: "a"}}), errs: []string{"Invalid value {} supplied to string"}},
	{typ: Number, node: ir.FromSlice([]*ir.Node{nil}), errs: []string{"Invalid value [null] supplied to number"}},
	{
		typ:  Array(Number),
		node: ir.FromSlice([]*ir.Node{ir.FromInt(1), nil}),
		errs: []string{"Invalid value undefined supplied to Array<number>/1: number"},
	},
}

func TestValidate(t *testing.T) {
	for i := range validateTests {
		vt := &validateTests[i]
		v := vt.node
		if v == nil {
			v = mustParse(t, vt.in)
		}
		r := Validate(v, vt.typ)
		if vt.errs == nil {
			if r.IsFailure() {
				t.Errorf("%s on %s: unexpected failure\n%s", vt.typ.Name(), ir.ToJSON(v), ErrorsOf(r))
			}
			continue
		}
		if r.IsSuccess() {
			t.Errorf("%s on %s: expected failure", vt.typ.Name(), ir.ToJSON(v))
			continue
		}
		if diff := cmp.Diff(vt.errs, ErrorsOf(r).Descriptions()); diff != "" {
			t.Errorf("%s on %s (-want +got):\n%s", vt.typ.Name(), ir.ToJSON(v), diff)
		}
	}
}

func TestErrorValues(t *testing.T) {
	in := mustParse(t, `{"a": {"b": "x"}}`)
	typ := Object(Props{{"a", Object(Props{{"b", Number}})}})
	r := Validate(in, typ)
	errs := ErrorsOf(r)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	e := errs[0]
	if e.Value != in.Values[0].Values[0] {
		t.Errorf("error value should be the offending input node")
	}
	if got := len(e.Context); got != 3 {
		t.Errorf("context depth %d, want 3", got)
	}
	if e.Context[0].Key != "" || e.Context[0].Type != typ {
		t.Errorf("root entry should have empty key and the root type, got %v", e.Context[0])
	}
}

func TestRefinementReportsRawValue(t *testing.T) {
	typ := Refinement(Map(Number, double), func(v *ir.Node) bool { return v.Number < 3 })
	in := ir.FromInt(2)
	r := Validate(in, typ)
	errs := ErrorsOf(r)
	if len(errs) != 1 || errs[0].Value != in {
		t.Fatalf("expected one error on the raw input, got %v", errs)
	}
	if got, want := typ.Name(), "((number => double) | <function1>)"; got != want {
		t.Errorf("name %q want %q", got, want)
	}
}

func TestRecursion(t *testing.T) {
	typ := Recursion("T", func(self Type) Type {
		return Object(Props{{"a", Number}, {"b", Maybe(self)}})
	})
	if got := typ.Name(); got != "T" {
		t.Errorf("name %q", got)
	}
	ok := mustParse(t, `{"a": 1, "b": {"a": 2, "b": {"a": 3}}}`)
	if r := Validate(ok, typ); r.IsFailure() {
		t.Errorf("unexpected failure\n%s", ErrorsOf(r))
	} else if r.Value() != ok {
		t.Errorf("recursive validation should preserve the input")
	}
	r := Validate(mustParse(t, `{"a": 1, "b": {}}`), typ)
	want := []string{"Invalid value undefined supplied to T/b: ?T/a: number"}
	if diff := cmp.Diff(want, ErrorsOf(r).Descriptions()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRecursionKeys(t *testing.T) {
	typ := Recursion("T", func(self Type) Type {
		return Object(Props{{"a", Number}, {"next", Maybe(self)}})
	})
	keys := Keys(typ)
	if diff := cmp.Diff([]string{"a", "next"}, keys.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Is(ir.FromString("next"), Keys(typ.Self())) {
		t.Errorf("keys of the bound placeholder should resolve")
	}
}

func TestRecursionUnbound(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnbound) || !errors.Is(err, ErrConstruction) {
			t.Errorf("expected ErrUnbound panic, got %v", r)
		}
	}()
	Recursion("T", func(self Type) Type {
		Validate(ir.Null(), self)
		return Number
	})
}

func TestCheck(t *testing.T) {
	if err := Check(ir.FromString("s"), String); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	err := Check(mustParse(t, `[1, "a", "b"]`), Array(Number))
	if !errors.Is(err, ErrCheck) {
		t.Fatalf("expected ErrCheck, got %v", err)
	}
	want := "[runtype failure]\n" +
		`Invalid value "a" supplied to Array<number>/1: number` + "\n" +
		`Invalid value "b" supplied to Array<number>/2: number`
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	var f *Failure
	if !errors.As(err, &f) || len(f.Errors) != 2 {
		t.Errorf("expected *Failure with 2 errors, got %#v", err)
	}
}

func TestMustCheckAndFromValidation(t *testing.T) {
	in := mustParse(t, `[1, 2]`)
	MustCheck(in, Array(Number))
	out := FromValidation(in, Array(Map(Number, double)))
	if diff := cmp.Diff("[2,4]", ir.ToJSON(out)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCheck) {
			t.Errorf("expected ErrCheck panic, got %v", r)
		}
	}()
	FromValidation(in, Array(String))
}

func TestAssert(t *testing.T) {
	Assert(true, nil)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAssert) || !strings.Contains(err.Error(), "bad state") {
			t.Errorf("expected ErrAssert panic, got %v", r)
		}
	}()
	Assert(false, func() string { return "bad state" })
}

func TestValidateNil(t *testing.T) {
	if !Is(nil, Void) {
		t.Errorf("nil node should validate as undefined")
	}
	if Is(nil, String) {
		t.Errorf("nil node is not a string")
	}
}

func TestConstructionPanics(t *testing.T) {
	tests := map[string]func(){
		"empty intersection": func() { Intersection(nil) },
		"empty union":        func() { Union([]Type{}) },
		"nil element":        func() { Array(nil) },
		"nil tuple member":   func() { Tuple([]Type{String, nil}) },
		"duplicate key":      func() { Object(Props{{"a", String}, {"a", Number}}) },
		"nil prop":           func() { Exact(Props{{"a", nil}}) },
		"shape of string":    func() { Shape(String) },
		"keys of array":      func() { Keys(Array(String)) },
		"null literal":       func() { LiteralOf(ir.Null()) },
		"nil predicate":      func() { Refinement(Number, nil) },
		"nil definition":     func() { Recursion("T", func(Type) Type { return nil }) },
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrConstruction) {
					t.Errorf("expected ErrConstruction panic, got %v", r)
				}
			}()
			f()
		})
	}
}
