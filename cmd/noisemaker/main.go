package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"logmetrics/internal/noise"
	"logmetrics/internal/shared/loggers"
)

func main() {
	var (
		natsURL   = pflag.String("nats-url", "nats://127.0.0.1:4222", "NATS server URL")
		subject   = pflag.String("subject", "logs.access", "subject to publish lines on")
		rate      = pflag.Int("rate", 1000, "lines per second per stream")
		batchSize = pflag.Int("batch-size", 100, "lines per published chunk")
		streams   = pflag.Int("streams", 1, "number of concurrent publishing streams")
		format    = pflag.String("format", "apache", "line format: apache or json")
		logLevel  = pflag.String("log-level", "info", "log level")
	)
	pflag.Parse()

	logger, err := loggers.New(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With().Str(loggers.FieldApp, "noisemaker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < *streams; i++ {
		streamID := i
		streamLogger := logger.With().Int("stream", streamID).Logger()
		stream := noise.NewStream(noise.StreamConfig{
			URL:       *natsURL,
			Subject:   *subject,
			StreamID:  streamID,
			Rate:      *rate,
			BatchSize: *batchSize,
			Format:    noise.Format(*format),

			RetryInitialInterval: 100 * time.Millisecond,
			RetryMaxInterval:     5 * time.Second,
			RetryMaxAttempts:     10,
		}, streamLogger)

		group.Go(func() error {
			return stream.Run(groupCtx)
		})
	}

	logger.Info().
		Int("streams", *streams).
		Int("rate", *rate).
		Str("format", *format).
		Msg("noisemaker started")

	if err := group.Wait(); err != nil {
		logger.Error().Err(err).Msg("stream failed")
		os.Exit(1)
	}
}
