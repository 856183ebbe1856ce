// Package exporters publishes the aggregate store as prometheus series.
//
// The reduction is recomputed on every scrape: the collector snapshots the
// store and emits const metrics, so nothing is cached between calls and a
// scrape always reflects the store exactly. Top-N selection and the
// most-recent-hours cut cap the exported label cardinality independently of
// how much the store retains.
package exporters

import (
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"logmetrics/internal/analytics"
	"logmetrics/internal/models"
)

const (
	topHostsExported     = 10
	topPathsExported     = 5
	topByteHostsExported = 5
	recentHoursExported  = 4
)

// StatsSource is the read side of the aggregate store.
type StatsSource interface {
	EventFrequency() map[int]uint64
	TopPathFrequency(n int) []analytics.PathCount
	HostFrequency() map[models.Hostname]uint64
	BytesPerHourPerHost() []analytics.HostHourBytes
}

// Collector reduces the store into the published series set:
// event_count{status}, host_hits{host}, path_hits{path} as counters and
// host_hour_bytes{host,hour} as a gauge with hour formatted YYYYMMDDHH.
type Collector struct {
	source StatsSource

	eventDesc    *prometheus.Desc
	hostDesc     *prometheus.Desc
	pathDesc     *prometheus.Desc
	hostHourDesc *prometheus.Desc
}

func NewCollector(source StatsSource) *Collector {
	return &Collector{
		source:       source,
		eventDesc:    prometheus.NewDesc("event_count", "Number of HTTP status code events", []string{"status"}, nil),
		hostDesc:     prometheus.NewDesc("host_hits", "Hits per host", []string{"host"}, nil),
		pathDesc:     prometheus.NewDesc("path_hits", "Hits per path", []string{"path"}, nil),
		hostHourDesc: prometheus.NewDesc("host_hour_bytes", "Bytes served per hour per host", []string{"host", "hour"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.eventDesc
	ch <- c.hostDesc
	ch <- c.pathDesc
	ch <- c.hostHourDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.collectEvents(ch)
	c.collectHosts(ch)
	c.collectPaths(ch)
	c.collectHostHourBytes(ch)
}

func (c *Collector) collectEvents(ch chan<- prometheus.Metric) {
	for status, count := range c.source.EventFrequency() {
		ch <- prometheus.MustNewConstMetric(c.eventDesc, prometheus.CounterValue, float64(count), strconv.Itoa(status))
	}
}

func (c *Collector) collectHosts(ch chan<- prometheus.Metric) {
	frequency := c.source.HostFrequency()
	hosts := make([]models.Hostname, 0, len(frequency))
	for host := range frequency {
		hosts = append(hosts, host)
	}
	sort.Slice(hosts, func(i, j int) bool {
		if frequency[hosts[i]] != frequency[hosts[j]] {
			return frequency[hosts[i]] > frequency[hosts[j]]
		}
		return hosts[i] < hosts[j]
	})
	if len(hosts) > topHostsExported {
		hosts = hosts[:topHostsExported]
	}
	for _, host := range hosts {
		ch <- prometheus.MustNewConstMetric(c.hostDesc, prometheus.CounterValue, float64(frequency[host]), string(host))
	}
}

func (c *Collector) collectPaths(ch chan<- prometheus.Metric) {
	for _, entry := range c.source.TopPathFrequency(topPathsExported) {
		ch <- prometheus.MustNewConstMetric(c.pathDesc, prometheus.CounterValue, float64(entry.Count), entry.Path)
	}
}

func (c *Collector) collectHostHourBytes(ch chan<- prometheus.Metric) {
	snapshot := c.source.BytesPerHourPerHost()

	totals := make(map[models.Hostname]uint64, len(snapshot))
	for _, entry := range snapshot {
		var sum uint64
		for _, hour := range entry.Hours {
			sum += hour.Bytes
		}
		totals[entry.Host] = sum
	}

	ranked := make([]models.Hostname, 0, len(totals))
	for host := range totals {
		ranked = append(ranked, host)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > topByteHostsExported {
		ranked = ranked[:topByteHostsExported]
	}
	selected := make(map[models.Hostname]bool, len(ranked))
	for _, host := range ranked {
		selected[host] = true
	}

	for _, entry := range snapshot {
		if !selected[entry.Host] {
			continue
		}
		hours := entry.Hours // sorted hour-ascending by the store
		if len(hours) > recentHoursExported {
			hours = hours[len(hours)-recentHoursExported:]
		}
		for _, hour := range hours {
			ch <- prometheus.MustNewConstMetric(
				c.hostHourDesc,
				prometheus.GaugeValue,
				float64(hour.Bytes),
				string(entry.Host),
				hour.Hour.Label(),
			)
		}
	}
}
