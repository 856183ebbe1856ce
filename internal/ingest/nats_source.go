// Package ingest connects the pipeline to its inbound raw-line transport.
//
// The core only needs a stream of newline-delimited chunks and an
// end-of-stream signal; everything bus-specific (connection, reconnect
// policy) stays here.
package ingest

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"

	"logmetrics/internal/shared/loggers"
)

// subscription buffer between the NATS client and the forwarding loop.
const msgBuffer = 64

// natsConnect is swapped out in tests.
var natsConnect = nats.Connect

// RetryPolicy caps the reconnect loop: exponentially growing delays up to
// MaxInterval, at most MaxAttempts tries, then the source gives up and the
// failure is fatal to the process.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     uint64
}

// NatsSource subscribes to a subject and forwards each message payload to
// the lines channel as one chunk.
type NatsSource struct {
	url     string
	subject string
	retry   RetryPolicy
	logger  loggers.Logger
}

func NewNatsSource(url, subject string, retry RetryPolicy, logger loggers.Logger) *NatsSource {
	return &NatsSource{url: url, subject: subject, retry: retry, logger: logger}
}

// Run forwards message payloads until ctx is cancelled, then closes lines
// so downstream stages observe end-of-stream and drain. A connection that
// stays down past the retry budget is returned as an error; the caller
// treats it as fatal since the pipeline has nothing to process without
// input.
func (s *NatsSource) Run(ctx context.Context, lines chan<- string) error {
	defer close(lines)

	conn, err := s.connect(ctx)
	if err != nil {
		// A cancel during the retry loop is normal shutdown, not an
		// exhausted retry budget.
		if ctx.Err() != nil {
			return nil
		}
		return errTransportUnavailable(err)
	}
	defer conn.Close()

	msgs := make(chan *nats.Msg, msgBuffer)
	sub, err := conn.ChanSubscribe(s.subject, msgs)
	if err != nil {
		return errTransportUnavailable(err)
	}
	defer func() { _ = sub.Unsubscribe() }()

	s.logger.Info().Str(loggers.FieldSubject, s.subject).Msg("subscribed")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-msgs:
			metricChunksReceivedTotal.Inc()
			select {
			case lines <- string(msg.Data):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *NatsSource) connect(ctx context.Context) (*nats.Conn, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retry.InitialInterval
	policy.MaxInterval = s.retry.MaxInterval
	policy.MaxElapsedTime = 0

	var conn *nats.Conn
	attempt := func() error {
		s.logger.Info().Str("url", s.url).Msg("connecting to NATS")
		c, err := natsConnect(s.url)
		if err != nil {
			metricConnectFailuresTotal.Inc()
			return err
		}
		conn = c
		return nil
	}

	// MaxAttempts counts tries, WithMaxRetries counts retries after the first.
	err := backoff.Retry(attempt, backoff.WithMaxRetries(backoff.WithContext(policy, ctx), s.retry.MaxAttempts-1))
	if err != nil {
		return nil, err
	}
	return conn, nil
}
