package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both "no such email" and "wrong
	// password" so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
