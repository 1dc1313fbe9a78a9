package config

import "fmt"

// Error reports an invalid configuration value or file.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Kind() string { return "ConfigError" }

// Errorf builds an Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
