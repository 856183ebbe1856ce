package ingest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logmetrics/internal/shared/svcerrors"
)

func TestNatsSource_Run_GivesUpAfterRetryBudget(t *testing.T) {
	var attempts atomic.Int64
	original := natsConnect
	natsConnect = func(url string, options ...nats.Option) (*nats.Conn, error) {
		attempts.Add(1)
		return nil, errors.New("connection refused")
	}
	t.Cleanup(func() { natsConnect = original })

	source := NewNatsSource("nats://127.0.0.1:4222", "logs", RetryPolicy{
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxAttempts:     3,
	}, zerolog.Nop())

	lines := make(chan string)
	err := source.Run(context.Background(), lines)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeTransportUnavailable, svcErr.Code)
	assert.Equal(t, int64(3), attempts.Load())

	// End-of-stream must be signalled even on terminal failure.
	_, open := <-lines
	assert.False(t, open)
}

func TestNatsSource_Run_StopsRetryingOnCancel(t *testing.T) {
	original := natsConnect
	natsConnect = func(url string, options ...nats.Option) (*nats.Conn, error) {
		return nil, errors.New("connection refused")
	}
	t.Cleanup(func() { natsConnect = original })

	source := NewNatsSource("nats://127.0.0.1:4222", "logs", RetryPolicy{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxAttempts:     1000,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	lines := make(chan string)

	done := make(chan error, 1)
	go func() { done <- source.Run(ctx, lines) }()

	cancel()

	// A cancel mid-retry is normal shutdown, never a transport error.
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("source kept retrying after cancellation")
	}

	_, open := <-lines
	assert.False(t, open)
}
