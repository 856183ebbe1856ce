package batchers

import (
	"logmetrics/internal/shared/metrics"
)

var (
	metricLinesParsedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "lines_parsed_total",
		},
	)

	metricLinesRejectedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "lines_rejected_total",
		},
	)

	metricBatchFlushedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "batch_flushed_total",
		},
		[]string{"trigger"},
	)
)
