package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrSkipped       = errors.New("skipped")
	ErrRemoteFailure = errors.New("remote failure")
	ErrInvalidStatus = errors.New("invalid content status")
	ErrInvalidType   = errors.New("invalid content type")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Skip reasons. Each matches ErrSkipped under errors.Is so callers can tell an
// intentionally skipped call apart from a failed one.
var (
	ErrNotAuthenticated error = skipError("not authenticated")
	ErrNoEvent          error = skipError("no active event")
	ErrNotLoaded        error = skipError("event payment not loaded")
)

type skipError string

func (e skipError) Error() string { return string(e) }

func (e skipError) Is(target error) bool { return target == ErrSkipped }

// RemoteError reports a rejected call to the persistence adapter.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteFailure }

// Remote wraps err as a RemoteError for op. A nil err stays nil.
func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, Err: err}
}

// IsSkipped reports whether err is a guard-clause skip rather than a failure.
func IsSkipped(err error) bool {
	return errors.Is(err, ErrSkipped)
}
