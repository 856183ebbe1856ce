package aggregators

import (
	"logmetrics/internal/shared/metrics"
)

var (
	metricFactsAppliedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "facts_applied_total",
		},
		[]string{"kind"},
	)

	metricBatchesConsumedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "batches_consumed_total",
		},
	)
)
