package ir

import (
	"errors"
	"fmt"
)

var (
	ErrDecode          = errors.New("decode error")
	ErrTrailingData    = fmt.Errorf("%w: trailing data", ErrDecode)
	ErrBadKey          = fmt.Errorf("%w: object key must be a string", ErrDecode)
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrDecode)
	ErrUnsupported     = fmt.Errorf("%w: unsupported value", ErrDecode)
)
