package vodapi

import (
	"errors"
	"fmt"
)

var (
	ErrDecode       = errors.New("vodapi: cannot decode response envelope")
	ErrNoToken      = errors.New("vodapi: login response carries no token")
	ErrApplication  = errors.New("vodapi: application error")
	ErrEmptyPlayURL = errors.New("vodapi: play data URL is empty")
)

// ApplicationError is a non-success Envelope turned into an error.
type ApplicationError struct {
	Code int
	Msg  string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("vodapi: code %d: %s", e.Code, e.Msg)
}

func (e *ApplicationError) Unwrap() error { return ErrApplication }
