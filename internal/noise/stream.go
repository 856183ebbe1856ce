package noise

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"golang.org/x/time/rate"

	"logmetrics/internal/shared/loggers"
)

// Throttling is pointless past this rate; the publish loop becomes the
// bottleneck anyway.
const maxRateBeforeDisablingThrottle = 10_000

// natsConnect is swapped out in tests.
var natsConnect = nats.Connect

// StreamConfig describes one publishing stream.
type StreamConfig struct {
	URL       string
	Subject   string
	StreamID  int
	Rate      int // lines per second
	BatchSize int // lines per published chunk
	Format    Format

	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxAttempts     uint64
}

// Stream publishes batches of generated log lines to NATS at a bounded
// rate until its context is cancelled.
type Stream struct {
	cfg    StreamConfig
	logger loggers.Logger
}

func NewStream(cfg StreamConfig, logger loggers.Logger) *Stream {
	return &Stream{cfg: cfg, logger: logger}
}

func (s *Stream) Run(ctx context.Context) error {
	conn, err := s.connect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil // cancelled mid-retry
		}
		return err
	}
	defer conn.Close()

	var limiter *rate.Limiter
	if s.cfg.Rate < maxRateBeforeDisablingThrottle {
		// Tokens are lines; a publish consumes one batch worth.
		limiter = rate.NewLimiter(rate.Limit(s.cfg.Rate), s.cfg.BatchSize)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(s.cfg.StreamID)))

	var sb strings.Builder
	for {
		if limiter != nil {
			if err := limiter.WaitN(ctx, s.cfg.BatchSize); err != nil {
				return nil // cancelled
			}
		} else if ctx.Err() != nil {
			return nil
		}

		sb.Reset()
		sb.Grow(s.cfg.BatchSize * 128)
		now := time.Now()
		for i := 0; i < s.cfg.BatchSize; i++ {
			sb.WriteString(Line(s.cfg.Format, s.cfg.StreamID, rng, now))
			sb.WriteByte('\n')
		}

		if err := conn.Publish(s.cfg.Subject, []byte(sb.String())); err != nil {
			return err
		}
	}
}

func (s *Stream) connect(ctx context.Context) (*nats.Conn, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryInitialInterval
	policy.MaxInterval = s.cfg.RetryMaxInterval
	policy.MaxElapsedTime = 0

	var conn *nats.Conn
	attempt := func() error {
		s.logger.Info().Str("url", s.cfg.URL).Msg("connecting to NATS")
		c, err := natsConnect(s.cfg.URL)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}

	err := backoff.Retry(attempt, backoff.WithMaxRetries(backoff.WithContext(policy, ctx), s.cfg.RetryMaxAttempts-1))
	if err != nil {
		return nil, err
	}
	return conn, nil
}
