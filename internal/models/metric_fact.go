package models

// FactKind discriminates the MetricFact variants.
type FactKind uint8

const (
	FactStatusEvent FactKind = iota
	FactPathHit
	FactHostHit
	FactHourHit
	FactHostHourBytes
)

func (k FactKind) String() string {
	switch k {
	case FactStatusEvent:
		return "status_event"
	case FactPathHit:
		return "path_hit"
	case FactHostHit:
		return "host_hit"
	case FactHourHit:
		return "hour_hit"
	case FactHostHourBytes:
		return "host_hour_bytes"
	}
	return "unknown"
}

// MetricFact is one atomic, independently-applicable aggregation update
// derived from a parsed record. Each valid record yields exactly five
// facts, in the order StatusEvent, PathHit, HostHit, HourHit,
// HostHourBytes. Only the fields relevant to Kind are populated.
type MetricFact struct {
	Kind   FactKind
	Status int
	Path   string
	Host   Hostname
	Hour   HourBucket
	Bytes  uint64
}

func StatusEventFact(status int) MetricFact {
	return MetricFact{Kind: FactStatusEvent, Status: status}
}

func PathHitFact(path string) MetricFact {
	return MetricFact{Kind: FactPathHit, Path: path}
}

func HostHitFact(host Hostname) MetricFact {
	return MetricFact{Kind: FactHostHit, Host: host}
}

func HourHitFact(hour HourBucket) MetricFact {
	return MetricFact{Kind: FactHourHit, Hour: hour}
}

func HostHourBytesFact(host Hostname, hour HourBucket, bytes uint64) MetricFact {
	return MetricFact{Kind: FactHostHourBytes, Host: host, Hour: hour, Bytes: bytes}
}

// Facts appends the five facts for record to dst and returns the extended
// slice, preserving the fixed per-record ordering.
func Facts(dst []MetricFact, record AccessLogRecord) []MetricFact {
	hour := NewHourBucket(record.Timestamp)
	return append(dst,
		StatusEventFact(record.Status),
		PathHitFact(record.Path),
		HostHitFact(record.Host),
		HourHitFact(hour),
		HostHourBytesFact(record.Host, hour, record.Bytes),
	)
}
