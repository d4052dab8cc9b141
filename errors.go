package vodclient

import "errors"

var (
	ErrLoadConfig  = errors.New("vodclient: failed to load configuration")
	ErrOpenStorage = errors.New("vodclient: failed to open storage")
)
