// Package stats contains the derived-statistics engine: streak calculation,
// time-bucketed aggregations for the charts, and the per-habit stat composer.
// Every function is pure; "now" is an explicit parameter so callers and tests
// control the clock.
package stats

import "time"

// StartOfDay truncates a millisecond timestamp to midnight of its calendar
// day in the host's local time zone, returned as Unix milliseconds.
func StartOfDay(ts int64) int64 {
	t := time.UnixMilli(ts)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}

// IsSameDay reports whether two millisecond timestamps fall on the same
// local calendar day.
func IsSameDay(a, b int64) bool {
	return StartOfDay(a) == StartOfDay(b)
}
