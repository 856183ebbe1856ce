package models

import "time"

// AccessLogRecord is one parsed access-log line. It is ephemeral: the
// batcher decomposes it into MetricFacts immediately after parsing and the
// record itself is discarded.
type AccessLogRecord struct {
	Host      Hostname
	Timestamp time.Time // always UTC
	Path      string
	Status    int
	Bytes     uint64
}
