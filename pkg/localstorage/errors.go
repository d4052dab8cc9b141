package localstorage

import "errors"

var (
	ErrUnknownDriver = errors.New("unknown local storage driver")
	ErrEmptyKey      = errors.New("local storage key is empty")
	ErrClosed        = errors.New("local storage is closed")
	ErrCorruptFile   = errors.New("local storage file is corrupt")
)
