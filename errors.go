package runtype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/runtype/ir"
)

var (
	ErrConstruction = errors.New("malformed type")
	ErrUnbound      = fmt.Errorf("%w: recursive type validated before its definition was bound", ErrConstruction)
	ErrCheck        = errors.New("runtype failure")
	ErrAssert       = errors.New("assertion failed")
)

func constructionErr(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstruction, fmt.Sprintf(msg, args...))
}

// ValidationError is an offending value together with the path at which
// it was rejected.
type ValidationError struct {
	Value   *ir.Node
	Context Context
}

// Description renders e as "Invalid value <value> supplied to <path>".
func (e *ValidationError) Description() string {
	return "Invalid value " + Stringify(e.Value) + " supplied to " + e.Context.Path()
}

func (e *ValidationError) Error() string {
	return e.Description()
}

// Stringify renders functions by name, undefined as "undefined" and
// anything else as compact JSON.
func Stringify(v *ir.Node) string {
	return ir.ToJSON(v)
}

// Errors is the failure payload of a Validation. It is never empty when
// produced by a type.
type Errors []*ValidationError

func (es Errors) Descriptions() []string {
	res := make([]string, len(es))
	for i, e := range es {
		res[i] = e.Description()
	}
	return res
}

func (es Errors) Error() string {
	return strings.Join(es.Descriptions(), "\n")
}

// Failure is the error returned by Check and raised by MustCheck.
type Failure struct {
	Errors Errors
}

func (f *Failure) Error() string {
	return "[" + ErrCheck.Error() + "]\n" + f.Errors.Error()
}

func (f *Failure) Unwrap() error {
	return ErrCheck
}
