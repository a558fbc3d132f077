package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		in  *Node
		out string
	}{
		{Undefined(), "undefined"},
		{Null(), "null"},
		{FromBool(true), "true"},
		{FromInt(1), "1"},
		{FromFloat(-1.5), "-1.5"},
		{FromFloat(1e21), "1e+21"},
		{FromFloat(1e-7), "1e-7"},
		{FromFloat(math.Inf(1)), "null"},
		{FromString("s"), `"s"`},
		{FromString("a\"b"), `"a\"b"`},
		{FromFunc("f", 1), "f"},
		{FromFunc("", 2), "<function2>"},
		{FromSlice([]*Node{FromInt(1), Undefined(), FromString("x")}), `[1,null,"x"]`},
		{FromKeyVals([]KeyVal{
			{Key: "b", Val: FromInt(1)},
			{Key: "a", Val: Undefined()},
			{Key: "c", Val: FromFunc("g", 0)},
			{Key: "d", Val: FromSlice(nil)},
		}), `{"b":1,"d":[]}`},
		{FromKeyVals([]KeyVal{{Key: "a"}, {Key: "b", Val: FromSlice([]*Node{nil})}}), `{"b":[null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			if got := ToJSON(tt.in); got != tt.out {
				t.Errorf("ToJSON() = %s, want %s", got, tt.out)
			}
		})
	}
}

func TestParseJSONKeepsOrder(t *testing.T) {
	y, err := ParseJSON([]byte(`{"z": 1, "a": [true, null, "s"], "m": {"y": 2, "b": 3}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, y.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y", "b"}, Get(y, "m").Fields); diff != "" {
		t.Errorf("nested fields (-want +got):\n%s", diff)
	}
	if got := ToJSON(y); got != `{"z":1,"a":[true,null,"s"],"m":{"y":2,"b":3}}` {
		t.Errorf("round trip got %s", got)
	}
	if _, err := ParseJSON([]byte(`1 2`)); err == nil {
		t.Errorf("expected trailing data error")
	}
}
