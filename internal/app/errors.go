package app

import "errors"

// kinded is implemented by every user-facing error of the application.
type kinded interface {
	Kind() string
}

// Describe formats err as `<Kind>: <message>`.
func Describe(err error) string {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind() + ": " + err.Error()
	}
	return "Error: " + err.Error()
}

// ReportedError wraps an error that has already been logged.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }
