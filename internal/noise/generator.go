// Package noise generates synthetic web-server log traffic for load and
// integration testing of the analyzer.
package noise

import (
	"fmt"
	"math/rand"
	"time"
)

// Format selects the shape of generated lines.
type Format string

const (
	FormatApache Format = "apache"
	FormatJSON   Format = "json"
)

type weighted[T any] struct {
	value  T
	weight int
}

var (
	methods = []weighted[string]{
		{"GET", 6}, {"POST", 2}, {"PUT", 1}, {"DELETE", 1},
	}
	paths = []weighted[string]{
		{"/", 10}, {"/login", 10}, {"/api", 50}, {"/admin", 5}, {"/splash", 20}, {"gallery", 10},
	}
	statuses = []weighted[int]{
		{200, 50}, {201, 10}, {400, 10}, {401, 20}, {404, 50}, {500, 5},
	}

	services  = []string{"auth", "api", "frontend", "db"}
	levels    = []string{"INFO", "WARN", "ERROR"}
	messages  = []string{"User logged in", "DB query executed", "Cache miss", "Permission denied", "Token refreshed"}
)

func pick[T any](rng *rand.Rand, choices []weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := rng.Intn(total)
	for _, c := range choices {
		n -= c.weight
		if n < 0 {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}

// ApacheLine renders one Common Log Format line. Hosts are drawn from the
// 192.168.<stream>.0/24 range so different streams produce different host
// populations.
func ApacheLine(streamID int, rng *rand.Rand, now time.Time) string {
	ip := fmt.Sprintf("192.168.%d.%d", streamID%256, rng.Intn(256))
	timestamp := now.Format("02/Jan/2006:15:04:05 -0700")
	method := pick(rng, methods)
	path := pick(rng, paths)
	status := pick(rng, statuses)
	size := 100 + rng.Intn(1900)

	return fmt.Sprintf(`%s - - [%s] "%s %s HTTP/1.1" %d %d`, ip, timestamp, method, path, status, size)
}

// JSONLine renders one structured application log line, useful for feeding
// the analyzer traffic it should reject.
func JSONLine(streamID int, rng *rand.Rand, now time.Time) string {
	service := services[streamID%len(services)]
	level := levels[rng.Intn(len(levels))]
	msg := messages[rng.Intn(len(messages))]

	return fmt.Sprintf(`{"ts":%q,"service":%q,"level":%q,"msg":%q}`, now.Format(time.RFC3339), service, level, msg)
}

// Line renders one line in the requested format.
func Line(format Format, streamID int, rng *rand.Rand, now time.Time) string {
	if format == FormatJSON {
		return JSONLine(streamID, rng, now)
	}
	return ApacheLine(streamID, rng, now)
}
