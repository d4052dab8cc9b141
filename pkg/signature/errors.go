package signature

import "errors"

var (
	ErrMalformedSignature = errors.New("malformed signature")
	ErrMalformedTimestamp = errors.New("malformed signature timestamp")
	ErrSignatureMismatch  = errors.New("signature mismatch")
	ErrSignatureExpired   = errors.New("signature timestamp outside allowed window")
)
