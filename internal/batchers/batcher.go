// Package batchers implements the batching stage of the pipeline: raw
// newline-delimited chunks in, bounded batches of metric facts out.
package batchers

import (
	"context"
	"strings"
	"time"

	"logmetrics/internal/models"
	"logmetrics/internal/parsers"
	"logmetrics/internal/shared/loggers"
)

const (
	triggerSize     = "size"
	triggerInterval = "interval"
	triggerShutdown = "shutdown"
)

// Batcher parses each line of the inbound chunks and appends the five
// metric facts per valid record to a buffer. The buffer is handed off
// downstream when it reaches the size threshold or when the flush interval
// elapses, whichever comes first. Malformed lines are dropped silently and
// never stall the stage.
type Batcher struct {
	size          int
	flushInterval time.Duration
	logger        loggers.Logger
}

func New(size int, flushInterval time.Duration, logger loggers.Logger) *Batcher {
	return &Batcher{size: size, flushInterval: flushInterval, logger: logger}
}

// Run consumes chunks until the channel is closed, then performs a final
// flush and closes batches. A cancelled ctx while blocked on the
// downstream send means the consumer is gone; the stage exits quietly.
func (b *Batcher) Run(ctx context.Context, chunks <-chan string, batches chan<- []models.MetricFact) {
	defer close(batches)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buffer := make([]models.MetricFact, 0, b.size)

	// flush hands the buffer off and re-arms the interval timer. An empty
	// buffer flushes to nothing. Returns false when the downstream is gone.
	// A send that can proceed always wins over a cancelled ctx: during
	// graceful shutdown the ctx is cancelled while the aggregator is still
	// draining, and the final partial batch must not be lost to that race.
	flush := func(trigger string) bool {
		ticker.Reset(b.flushInterval)
		if len(buffer) == 0 {
			return true
		}
		batch := buffer
		buffer = make([]models.MetricFact, 0, b.size)
		select {
		case batches <- batch:
		default:
			select {
			case batches <- batch:
			case <-ctx.Done():
				return false
			}
		}
		metricBatchFlushedTotal.WithLabelValues(trigger).Inc()
		b.logger.Debug().Str(loggers.FieldTrigger, trigger).Int("facts", len(batch)).Msg("batch flushed")
		return true
	}

	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				flush(triggerShutdown)
				b.logger.Info().Msg("input exhausted, batcher stopping")
				return
			}
			for _, line := range strings.Split(chunk, "\n") {
				if line == "" {
					continue
				}
				record, ok := parsers.Parse(line)
				if !ok {
					metricLinesRejectedTotal.Inc()
					b.logger.Debug().Str("line", line).Msg("dropped malformed line")
					continue
				}
				metricLinesParsedTotal.Inc()
				buffer = models.Facts(buffer, record)
				if len(buffer) >= b.size {
					if !flush(triggerSize) {
						return
					}
				}
			}
		case <-ticker.C:
			if !flush(triggerInterval) {
				return
			}
		}
	}
}
