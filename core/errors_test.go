package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidationError(t *testing.T) {
	t.Run("direct validation error", func(t *testing.T) {
		err := &ValidationError{Reason: "count must be between 1 and 2000"}
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "count must be between 1 and 2000", err.Error())
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		err := fmt.Errorf("failed to validate request: %w", &ValidationError{Reason: "bad count"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.False(t, IsValidationError(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.False(t, IsValidationError(nil))
	})
}

func TestIsPermissionDeniedError(t *testing.T) {
	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("failed to fetch channel history: %w", ErrPermissionDenied)
		assert.True(t, IsPermissionDeniedError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.False(t, IsPermissionDeniedError(errors.New("permission denied")))
	})
}

func TestIsUpstreamError(t *testing.T) {
	t.Run("wrapped upstream error", func(t *testing.T) {
		err := fmt.Errorf(
			"failed to generate summary: %w",
			&UpstreamError{StatusCode: 529, Detail: "overloaded"},
		)
		assert.True(t, IsUpstreamError(err))
	})

	t.Run("transport error is not upstream", func(t *testing.T) {
		err := &TransportError{Op: "summarization request", Err: errors.New("connection reset")}
		assert.False(t, IsUpstreamError(err))
	})
}

func TestIsTimeoutError(t *testing.T) {
	t.Run("sentinel", func(t *testing.T) {
		assert.True(t, IsTimeoutError(fmt.Errorf("summarization request timed out: %w", ErrTimeout)))
	})

	t.Run("raw context deadline", func(t *testing.T) {
		assert.True(t, IsTimeoutError(context.DeadlineExceeded))
	})

	t.Run("cancellation is not a timeout", func(t *testing.T) {
		assert.False(t, IsTimeoutError(context.Canceled))
	})
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "fetch channel history", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "fetch channel history")
}
