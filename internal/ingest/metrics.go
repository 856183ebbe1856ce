package ingest

import (
	"logmetrics/internal/shared/metrics"
)

var (
	metricChunksReceivedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "chunks_received_total",
		},
	)

	metricConnectFailuresTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "connect_failures_total",
		},
	)
)
