package runtype

import (
	"fmt"

	"github.com/signadot/runtype/debug"
	"github.com/signadot/runtype/either"
	"github.com/signadot/runtype/ir"
)

// Validate checks v against t starting from the root context of t. A nil
// v is validated as undefined.
func Validate(v *ir.Node, t Type) Validation {
	if v == nil {
		v = ir.Undefined()
	}
	if debug.Validate() {
		debug.Logf("validate %v against %s\n", v, t.Name())
	}
	res := t.Validate(v, DefaultContext(t))
	if debug.Validate() && res.IsFailure() {
		debug.Logf("validate %s: %d errors\n", t.Name(), len(res.Errors()))
	}
	return res
}

func Is(v *ir.Node, t Type) bool {
	return Validate(v, t).IsSuccess()
}

// ErrorsOf returns the errors of a failed validation, nil on success.
func ErrorsOf(r Validation) Errors {
	return Errors(r.Errors())
}

// Check returns a *Failure describing every error when v is not a t.
func Check(v *ir.Node, t Type) error {
	return either.Fold(Validate(v, t),
		func(errs []*ValidationError) error { return &Failure{Errors: errs} },
		func(*ir.Node) error { return nil })
}

// MustCheck is Check, panicking with the *Failure.
func MustCheck(v *ir.Node, t Type) {
	if err := Check(v, t); err != nil {
		panic(err)
	}
}

// FromValidation returns the validated, possibly reconstructed value of v
// and panics with a *Failure if v is not a t.
func FromValidation(v *ir.Node, t Type) *ir.Node {
	r := Validate(v, t)
	if r.IsFailure() {
		panic(&Failure{Errors: ErrorsOf(r)})
	}
	return r.Value()
}

// Assert panics with an error wrapping ErrAssert when guard is false.
// message is only called on failure.
func Assert(guard bool, message func() string) {
	if guard {
		return
	}
	msg := "Assertion failed"
	if message != nil {
		msg = message()
	}
	panic(fmt.Errorf("%w: %s", ErrAssert, msg))
}
