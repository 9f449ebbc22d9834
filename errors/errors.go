package errors

import (
	"fmt"
)

func Error(msg string) error {
	return fmt.Errorf("%s", msg)
}

func Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}

func WrapError(cause error, msg string) error {
	return WrapErrorf(cause, "%s", msg)
}

func WrapErrorf(cause error, msg string, args ...interface{}) error {
	return WrapComplexError(cause, Errorf(msg, args...))
}

// WrapComplexError keeps err as the visible message and cause as the detail.
// Both stay reachable through errors.Is and errors.As.
func WrapComplexError(cause, err error) error {
	if cause == nil {
		cause = Error("<nil cause>")
	}

	return ComplexError{
		Err:   err,
		Cause: cause,
	}
}

type ComplexError struct {
	Err   error
	Cause error
}

func (e ComplexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
}

func (e ComplexError) Unwrap() []error {
	return []error{e.Err, e.Cause}
}
