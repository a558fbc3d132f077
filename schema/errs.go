package schema

import (
	"errors"
	"fmt"

	"github.com/signadot/runtype/token"
)

var (
	ErrSchema       = errors.New("schema error")
	ErrTag          = fmt.Errorf("%w: unknown tag", ErrSchema)
	ErrField        = fmt.Errorf("%w: bad field", ErrSchema)
	ErrTypeParams   = fmt.Errorf("%w: incorrect number of type parameters", ErrSchema)
	ErrIndexers     = fmt.Errorf("%w: incorrect number of type indexers (expected 1)", ErrSchema)
	ErrAnnotation   = fmt.Errorf("%w: unsupported annotation", ErrSchema)
	ErrUnknownType  = fmt.Errorf("%w: unknown type", ErrSchema)
	ErrCycle        = fmt.Errorf("%w: cyclic alias without recursion", ErrSchema)
	ErrDuplicate    = fmt.Errorf("%w: duplicate alias", ErrSchema)
	ErrPredicate    = fmt.Errorf("%w: bad predicate", ErrSchema)
	ErrRegistration = fmt.Errorf("%w: registration", ErrSchema)
)

// TransformError locates an error converting an annotation to a schema.
type TransformError struct {
	Alias string
	Pos   *token.Pos
	Err   error
}

func (e *TransformError) Unwrap() error { return e.Err }

func (e *TransformError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("type %s: %s", e.Alias, e.Err)
	}
	return fmt.Sprintf("type %s: %s at %s", e.Alias, e.Err, e.Pos)
}

// BuildError is an error building the runtime type of an alias.
type BuildError struct {
	Alias string
	Err   error
}

func (e *BuildError) Unwrap() error { return e.Err }

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s: %s", e.Alias, e.Err)
}
