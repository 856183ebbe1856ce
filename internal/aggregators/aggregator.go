package aggregators

import (
	"logmetrics/internal/models"
	"logmetrics/internal/shared/loggers"
)

// Recorder is the write side of the aggregation store: one infallible
// recording operation per MetricFact kind.
//
//go:generate mockgen -source=aggregator.go -destination=./mocks/recorder_mock.go -package=mocks
type Recorder interface {
	RecordEvent(status int)
	RecordPath(path string)
	RecordHost(host models.Hostname)
	RecordHourHit(hour models.HourBucket)
	RecordHostHourBytes(host models.Hostname, hour models.HourBucket, bytes uint64)
}

// Aggregator is the single logical consumer of the batch channel. It
// applies every fact of every batch, in order, to the recorder. Recording
// is in-memory and cannot fail, so there is no retry path.
type Aggregator struct {
	recorder Recorder
	logger   loggers.Logger
}

func New(recorder Recorder, logger loggers.Logger) *Aggregator {
	return &Aggregator{recorder: recorder, logger: logger}
}

// Run drains batches until the channel is closed, then returns. Closing
// the channel is the shutdown signal: the batching stage closes it after
// its final flush.
func (a *Aggregator) Run(batches <-chan []models.MetricFact) {
	for batch := range batches {
		for _, fact := range batch {
			a.apply(fact)
			metricFactsAppliedTotal.WithLabelValues(fact.Kind.String()).Inc()
		}
		metricBatchesConsumedTotal.Inc()
		a.logger.Debug().Int("facts", len(batch)).Msg("batch applied")
	}
	a.logger.Info().Msg("batch channel closed, aggregator stopping")
}

func (a *Aggregator) apply(fact models.MetricFact) {
	switch fact.Kind {
	case models.FactStatusEvent:
		a.recorder.RecordEvent(fact.Status)
	case models.FactPathHit:
		a.recorder.RecordPath(fact.Path)
	case models.FactHostHit:
		a.recorder.RecordHost(fact.Host)
	case models.FactHourHit:
		a.recorder.RecordHourHit(fact.Hour)
	case models.FactHostHourBytes:
		a.recorder.RecordHostHourBytes(fact.Host, fact.Hour, fact.Bytes)
	}
}
