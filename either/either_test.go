package either

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapChainFold(t *testing.T) {
	ok := Success[string](2)
	bad := Failure[string, int]([]string{"e1", "e2"})

	double := func(n int) int { return n * 2 }
	if got := Map(ok, double); !got.IsSuccess() || got.Value() != 4 {
		t.Errorf("Map on success = %v", got)
	}
	if got := Map(bad, double); !got.IsFailure() {
		t.Errorf("Map on failure should stay a failure")
	} else if diff := cmp.Diff([]string{"e1", "e2"}, got.Errors()); diff != "" {
		t.Errorf("Map errors (-want +got):\n%s", diff)
	}

	toStr := func(n int) Result[string, string] {
		if n < 0 {
			return Failure[string, string]([]string{"negative"})
		}
		return Success[string](strconv.Itoa(n))
	}
	if got := Chain(ok, toStr); got.Value() != "2" {
		t.Errorf("Chain on success = %v", got)
	}
	if got := Chain(Success[string](-1), toStr); !got.IsFailure() {
		t.Errorf("Chain should propagate the inner failure")
	}
	if got := Chain(bad, toStr); len(got.Errors()) != 2 {
		t.Errorf("Chain should pass the failure through, got %v", got.Errors())
	}

	count := func(es []string) int { return -len(es) }
	id := func(n int) int { return n }
	if got := Fold(ok, count, id); got != 2 {
		t.Errorf("Fold success = %d", got)
	}
	if got := Fold(bad, count, id); got != -2 {
		t.Errorf("Fold failure = %d", got)
	}
}

func TestFailureRequiresErrors(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyFailure) {
			t.Errorf("expected ErrEmptyFailure panic, got %v", r)
		}
	}()
	Failure[string, int](nil)
}

func TestFromSuccessPanicsOnFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	FromSuccess(Failure[string, int]([]string{"x"}))
}
