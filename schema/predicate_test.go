package schema

import (
	"errors"
	"testing"

	"github.com/signadot/runtype/ir"
)

func TestPredicate(t *testing.T) {
	tests := []struct {
		src  string
		v    *ir.Node
		want bool
	}{
		{"value > 1", ir.FromInt(2), true},
		{"value > 1", ir.FromInt(1), false},
		{"value > 1", ir.FromString("x"), false},
		{`value startsWith "a"`, ir.FromString("abc"), true},
		{"len(value) == 2", ir.FromSlice([]*ir.Node{ir.Null(), ir.Null()}), true},
		{`value.k == "v"`, ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}}), true},
	}
	for _, tt := range tests {
		p, err := Predicate(tt.src)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if got := p(tt.v); got != tt.want {
			t.Errorf("%s on %s: got %t", tt.src, ir.ToJSON(tt.v), got)
		}
	}
}

func TestPredicateErrors(t *testing.T) {
	if _, err := Predicate("value +"); !errors.Is(err, ErrPredicate) {
		t.Errorf("got %v", err)
	}
	if _, err := Predicate(`"not a bool"`); !errors.Is(err, ErrPredicate) {
		t.Errorf("got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustPredicate("(")
}
