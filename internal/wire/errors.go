package wire

import "errors"

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidPrice     = errors.New("invalid price")
)
