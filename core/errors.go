package core

import (
	"context"
	"errors"
	"fmt"
)

// ErrPermissionDenied is a sentinel error for cases where Discord denies
// access to a channel's message history
var ErrPermissionDenied = errors.New("permission denied")

// ErrTimeout is a sentinel error for upstream calls that exceeded their deadline
var ErrTimeout = errors.New("upstream deadline exceeded")

// ValidationError marks a rejected command argument. Reason is safe to show
// to the invoking user as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError marks a network failure talking to either upstream
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError marks a failure payload returned by the summarization provider
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Detail)
}

// IsValidationError checks if an error is a rejected command argument
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPermissionDeniedError checks if an error is a platform access denial
func IsPermissionDeniedError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsUpstreamError checks if an error carries a provider failure payload
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsTimeoutError checks if an error is a deadline expiry, either our sentinel
// or a raw context deadline surfaced by an abandoned in-flight call
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}
