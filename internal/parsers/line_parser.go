// Package parsers turns raw access-log text lines into structured records.
//
// Parsing is a pure function with no error channel: a line either yields a
// complete record or is rejected. Rejection is silent, so a malformed line
// never stalls or crashes the pipeline.
package parsers

import (
	"strconv"
	"strings"
	"time"

	"logmetrics/internal/models"
)

// Parse extracts an AccessLogRecord from one Common Log Format line:
//
//	<host> - - [<day>/<mon>/<year>:<hour>:<min>:<sec> <zone>] "<method> <path> ..." <status> <bytes|->
//
// The bracketed timestamp is converted to UTC using its zone offset. The
// second return value is false when any field is missing or malformed.
func Parse(line string) (models.AccessLogRecord, bool) {
	fields := strings.Fields(line)
	cursor := 0
	next := func() (string, bool) {
		if cursor >= len(fields) {
			return "", false
		}
		token := fields[cursor]
		cursor++
		return token, true
	}

	host, ok := next()
	if !ok {
		return models.AccessLogRecord{}, false
	}
	if _, ok := next(); !ok { // identity field
		return models.AccessLogRecord{}, false
	}
	if _, ok := next(); !ok { // auth field
		return models.AccessLogRecord{}, false
	}

	datePart, ok := next()
	if !ok || !strings.HasPrefix(datePart, "[") {
		return models.AccessLogRecord{}, false
	}
	zonePart, ok := next()
	if !ok || !strings.HasSuffix(zonePart, "]") {
		return models.AccessLogRecord{}, false
	}
	timestamp, ok := parseTimestamp(strings.TrimPrefix(datePart, "["), strings.TrimSuffix(zonePart, "]"))
	if !ok {
		return models.AccessLogRecord{}, false
	}

	if _, ok := next(); !ok { // request method
		return models.AccessLogRecord{}, false
	}
	path, ok := next()
	if !ok {
		return models.AccessLogRecord{}, false
	}
	if strings.HasSuffix(path, `"`) {
		path = strings.TrimSuffix(path, `"`)
	} else {
		// Skip the rest of the quoted request (e.g. the protocol token).
		for {
			token, ok := next()
			if !ok {
				return models.AccessLogRecord{}, false
			}
			if strings.HasSuffix(token, `"`) {
				break
			}
		}
	}

	statusToken, ok := next()
	if !ok {
		return models.AccessLogRecord{}, false
	}
	status, ok := parseStatus(statusToken)
	if !ok {
		return models.AccessLogRecord{}, false
	}

	bytesToken, ok := next()
	if !ok {
		return models.AccessLogRecord{}, false
	}
	bytes := uint64(0)
	if bytesToken != "-" {
		parsed, err := strconv.ParseUint(bytesToken, 10, 64)
		if err != nil {
			return models.AccessLogRecord{}, false
		}
		bytes = parsed
	}

	return models.AccessLogRecord{
		Host:      models.Hostname(host),
		Timestamp: timestamp,
		Path:      path,
		Status:    status,
		Bytes:     bytes,
	}, true
}

// parseStatus accepts exactly three digits.
func parseStatus(token string) (int, bool) {
	if len(token) != 3 {
		return 0, false
	}
	status, err := strconv.Atoi(token)
	if err != nil || status < 100 {
		return 0, false
	}
	return status, true
}

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// parseTimestamp parses "02/Jan/2006:15:04:05" plus a signed 4-digit zone
// offset and returns the instant in UTC.
func parseTimestamp(date, zone string) (time.Time, bool) {
	parts := strings.FieldsFunc(date, func(r rune) bool { return r == '/' || r == ':' })
	if len(parts) != 6 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthsByAbbrev[parts[1]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(parts[3])
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(parts[4])
	if err != nil {
		return time.Time{}, false
	}
	second, err := strconv.Atoi(parts[5])
	if err != nil {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes out-of-range calendar fields instead of failing;
	// a changed day or month means the input was invalid (e.g. Feb 30).
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}

	offset, err := strconv.Atoi(zone)
	if err != nil {
		return time.Time{}, false
	}
	offsetHours := offset / 100
	offsetMinutes := offset - offsetHours*100

	return t.Add(-time.Duration(offsetHours)*time.Hour - time.Duration(offsetMinutes)*time.Minute), true
}
