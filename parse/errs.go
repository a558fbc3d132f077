package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/runtype/token"
)

var (
	ErrParse  = errors.New("parse error")
	ErrEOF    = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrToken  = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrDupKey = fmt.Errorf("%w: duplicate key", ErrParse)
)

// ParseErr is an error located in the source.
type ParseErr struct {
	Err error
	Pos *token.Pos
}

func (e *ParseErr) Unwrap() error { return e.Err }

func (e *ParseErr) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpected(tok *token.Token, want string) error {
	return &ParseErr{
		Err: fmt.Errorf("%w %s %q, expected %s", ErrToken, tok.Type, tok.Bytes, want),
		Pos: tok.Pos,
	}
}
