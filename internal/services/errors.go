package services

import "errors"

// ErrNotFound covers both a missing record and a record owned by another user.
// The two cases are deliberately indistinguishable so the API never leaks the
// existence of other users' records.
var ErrNotFound = errors.New("record not found")

// ValidationError reports the first semantic problem with the caller's input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }
