package models

import "time"

const maxEndpointLen = 100

// Hostname identifies a client host. It is an opaque value: equality is
// exact and no length cap is applied, since hosts come from the fixed
// leading token of a log line. Distinct-host cardinality in the store is
// therefore unbounded; see the analytics package doc.
type Hostname string

// Endpoint identifies a request path. Paths are request-controlled, so the
// value is truncated to the first 100 characters on construction to bound
// the memory cost of any single key.
type Endpoint string

// NewEndpoint builds an Endpoint from a raw request path.
func NewEndpoint(path string) Endpoint {
	runes := []rune(path)
	if len(runes) > maxEndpointLen {
		return Endpoint(runes[:maxEndpointLen])
	}
	return Endpoint(path)
}

// HourBucket is an instant floored to its UTC hour boundary. Two instants
// within the same UTC hour produce equal HourBuckets, so it is usable as a
// map key. This is the time-series key granularity everywhere in the store.
type HourBucket struct {
	start time.Time
}

// NewHourBucket converts any instant, regardless of source offset, to its
// containing UTC hour.
func NewHourBucket(t time.Time) HourBucket {
	u := t.UTC()
	return HourBucket{
		start: time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), 0, 0, 0, time.UTC),
	}
}

// Start returns the hour boundary instant in UTC.
func (h HourBucket) Start() time.Time {
	return h.start
}

// Before reports whether h precedes other.
func (h HourBucket) Before(other HourBucket) bool {
	return h.start.Before(other.start)
}

// Label formats the bucket as YYYYMMDDHH, the exported hour label.
func (h HourBucket) Label() string {
	return h.start.Format("2006010215")
}
