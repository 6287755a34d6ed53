package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is a malformed or incomplete request. It is raised before
// any I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UpstreamFetchError wraps a failed call to the sports data provider or the
// reference store.
type UpstreamFetchError struct {
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

func Upstream(source string, err error) error {
	if err == nil {
		return nil
	}
	var upstream *UpstreamFetchError
	if errors.As(err, &upstream) {
		return err
	}
	return &UpstreamFetchError{Source: source, Err: err}
}

// StatusCode maps an error to the HTTP status used to report it.
func StatusCode(err error) int {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
