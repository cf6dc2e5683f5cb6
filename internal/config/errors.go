package config

import "errors"

var (
	ErrMissingMaxPosition = errors.New("maximum position not provided")
	ErrInvalidMaxPosition = errors.New("invalid maximum position")
	ErrInvalidSetting     = errors.New("invalid setting")
)

const (
	usageMessage           = "Usage: allocator maximum-position=<maximum-position>"
	invalidPositionMessage = "Invalid maximum position provided."
)

// Diagnostic is the one-line message printed before exiting on a
// configuration error.
func Diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrMissingMaxPosition):
		return usageMessage
	case errors.Is(err, ErrInvalidMaxPosition):
		return invalidPositionMessage
	}
	return err.Error()
}
