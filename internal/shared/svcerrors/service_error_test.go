package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewInternalError("AGG_9000", cause)

	assert.Equal(t, categoryInternal, err.Category)
	assert.Equal(t, "AGG_9000", err.Code)
	assert.Equal(t, 500, err.HttpStatusCode)
	assert.True(t, err.IsInternalError())
	assert.ErrorIs(t, err, cause)
}

func TestNewUnavailableError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewUnavailableError("ING_9000", "message bus unreachable", cause)

	assert.Equal(t, categoryUnavailable, err.Category)
	assert.Equal(t, 503, err.HttpStatusCode)
	assert.False(t, err.IsInternalError())
	assert.Equal(t, "ING_9000: message bus unreachable", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAsServiceError_WrappedChain(t *testing.T) {
	t.Parallel()

	svcErr := NewInternalErrorPanic(errors.New("nil deref"))
	wrapped := fmt.Errorf("worker failed: %w", svcErr)

	extracted, ok := AsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, errorCodeInternalPanic, extracted.Code)
}

func TestAsServiceError_PlainError(t *testing.T) {
	t.Parallel()

	_, ok := AsServiceError(errors.New("plain"))
	assert.False(t, ok)
}
