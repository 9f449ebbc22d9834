package errors

import (
	"strings"
)

type MultiError struct {
	Errors []error
}

func NewMultiError(errors ...error) error {
	return MultiError{Errors: errors}
}

func (e MultiError) Error() string {
	errors := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		errors = append(errors, err.Error())
	}
	return strings.Join(errors, "\n")
}

func (e MultiError) Unwrap() []error {
	return e.Errors
}
