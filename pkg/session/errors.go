package session

import "errors"

var (
	ErrNilStorage = errors.New("session: storage is required")
	ErrRehydrate  = errors.New("session: failed to rehydrate from storage")
)
