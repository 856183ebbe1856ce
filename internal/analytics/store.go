// Package analytics holds the in-memory aggregate store for the streaming
// pipeline.
//
// The store is the only object shared between the aggregator (sole writer)
// and the exporter (reader). Each statistic is guarded by its own lock, so
// reads of one statistic never block writes to another. The time-series
// shaped structures (hour hits, per-host hour buckets) and the path map are
// bounded LRU maps; that bound is what keeps process memory finite under an
// unbounded stream. Host counts are deliberately unbounded: hostnames come
// from the fixed leading token of a log line, while paths are
// request-controlled. Bounding hosts would silently change export results,
// so the asymmetry is kept as documented behavior.
package analytics

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2/simplelru"

	"logmetrics/internal/models"
)

const (
	maxTrackedPaths = 10
	maxTrackedHours = 6
)

// PathCount is one entry of a top-path snapshot.
type PathCount struct {
	Path  string
	Count uint64
}

// HourBytes is one retained hour bucket of a host's byte totals.
type HourBytes struct {
	Hour  models.HourBucket
	Bytes uint64
}

// HostHourBytes is one host's retained hour buckets, sorted by hour
// ascending.
type HostHourBytes struct {
	Host  models.Hostname
	Hours []HourBytes
}

// Store accumulates bounded aggregate statistics over parsed log records.
// All recording operations are infallible and monotonically non-decreasing
// for a key's lifetime; values only disappear through LRU eviction.
type Store struct {
	eventsMu sync.RWMutex
	events   map[models.Event]uint64

	pathsMu sync.Mutex
	paths   *lru.LRU[models.Endpoint, uint64]

	hostsMu sync.RWMutex
	hosts   map[models.Hostname]uint64

	hoursMu sync.Mutex
	hours   *lru.LRU[models.HourBucket, uint64]

	hostHourBytesMu sync.Mutex
	hostHourBytes   map[models.Hostname]*lru.LRU[models.HourBucket, uint64]
}

// NewStore creates an empty store. Construct it once at process start and
// pass it to the aggregator and exporter; there is no package-level
// singleton.
func NewStore() *Store {
	return &Store{
		events:        make(map[models.Event]uint64),
		paths:         mustLRU[models.Endpoint](maxTrackedPaths),
		hosts:         make(map[models.Hostname]uint64),
		hours:         mustLRU[models.HourBucket](maxTrackedHours),
		hostHourBytes: make(map[models.Hostname]*lru.LRU[models.HourBucket, uint64]),
	}
}

func mustLRU[K comparable](capacity int) *lru.LRU[K, uint64] {
	cache, err := lru.NewLRU[K, uint64](capacity, nil)
	if err != nil {
		panic(err)
	}
	return cache
}

// RecordEvent increments the counter for the event mapped to status. Codes
// outside the canonical four are a no-op.
func (s *Store) RecordEvent(status int) {
	event, ok := models.EventFromStatus(status)
	if !ok {
		return
	}
	s.eventsMu.Lock()
	s.events[event]++
	s.eventsMu.Unlock()
}

// RecordPath increments the hit count for path, truncated to the endpoint
// length cap, touching LRU recency.
func (s *Store) RecordPath(path string) {
	endpoint := models.NewEndpoint(path)
	s.pathsMu.Lock()
	count, _ := s.paths.Get(endpoint)
	s.paths.Add(endpoint, count+1)
	s.pathsMu.Unlock()
}

// RecordHost increments the hit count for host.
func (s *Store) RecordHost(host models.Hostname) {
	s.hostsMu.Lock()
	s.hosts[host]++
	s.hostsMu.Unlock()
}

// RecordHourHit increments the hit count for hour, touching LRU recency.
func (s *Store) RecordHourHit(hour models.HourBucket) {
	s.hoursMu.Lock()
	count, _ := s.hours.Get(hour)
	s.hours.Add(hour, count+1)
	s.hoursMu.Unlock()
}

// RecordHostHourBytes adds bytes to the running total for (host, hour),
// lazily creating the host's bounded hour map. Repeated calls for the same
// pair accumulate.
func (s *Store) RecordHostHourBytes(host models.Hostname, hour models.HourBucket, bytes uint64) {
	s.hostHourBytesMu.Lock()
	hours, ok := s.hostHourBytes[host]
	if !ok {
		hours = mustLRU[models.HourBucket](maxTrackedHours)
		s.hostHourBytes[host] = hours
	}
	total, _ := hours.Get(hour)
	hours.Add(hour, total+bytes)
	s.hostHourBytesMu.Unlock()
}

// EventFrequency returns a copy of the event counters keyed by their
// numeric status code.
func (s *Store) EventFrequency() map[int]uint64 {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	frequency := make(map[int]uint64, len(s.events))
	for event, count := range s.events {
		frequency[event.Status()] = count
	}
	return frequency
}

// TopPathFrequency returns up to n retained paths sorted by count
// descending. Ties keep the store's recency iteration order.
func (s *Store) TopPathFrequency(n int) []PathCount {
	s.pathsMu.Lock()
	entries := make([]PathCount, 0, s.paths.Len())
	for _, endpoint := range s.paths.Keys() {
		count, _ := s.paths.Peek(endpoint)
		entries = append(entries, PathCount{Path: string(endpoint), Count: count})
	}
	s.pathsMu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// HostFrequency returns a copy of the per-host hit counters.
func (s *Store) HostFrequency() map[models.Hostname]uint64 {
	s.hostsMu.RLock()
	defer s.hostsMu.RUnlock()

	frequency := make(map[models.Hostname]uint64, len(s.hosts))
	for host, count := range s.hosts {
		frequency[host] = count
	}
	return frequency
}

// HourHitFrequency returns a copy of the retained per-hour hit counters.
func (s *Store) HourHitFrequency() map[models.HourBucket]uint64 {
	s.hoursMu.Lock()
	defer s.hoursMu.Unlock()

	frequency := make(map[models.HourBucket]uint64, s.hours.Len())
	for _, hour := range s.hours.Keys() {
		count, _ := s.hours.Peek(hour)
		frequency[hour] = count
	}
	return frequency
}

// BytesPerHourPerHost returns, per host, the retained hour buckets and
// their byte totals sorted by hour ascending. The result is an independent
// snapshot.
func (s *Store) BytesPerHourPerHost() []HostHourBytes {
	s.hostHourBytesMu.Lock()
	defer s.hostHourBytesMu.Unlock()

	snapshot := make([]HostHourBytes, 0, len(s.hostHourBytes))
	for host, hours := range s.hostHourBytes {
		entry := HostHourBytes{Host: host, Hours: make([]HourBytes, 0, hours.Len())}
		for _, hour := range hours.Keys() {
			bytes, _ := hours.Peek(hour)
			entry.Hours = append(entry.Hours, HourBytes{Hour: hour, Bytes: bytes})
		}
		sort.Slice(entry.Hours, func(i, j int) bool { return entry.Hours[i].Hour.Before(entry.Hours[j].Hour) })
		snapshot = append(snapshot, entry)
	}
	return snapshot
}
