package ir

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("type mismatch")

type TypeMismatchErr struct {
	Got, Want Type
}

func (e *TypeMismatchErr) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchErr) Error() string {
	return fmt.Sprintf("type mismatch: have %s, want %s", e.Got, e.Want)
}

func typeMismatch(got, want Type) error {
	return &TypeMismatchErr{Got: got, Want: want}
}
