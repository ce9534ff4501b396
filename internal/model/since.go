package model

import "fmt"

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// Since formats the age of a task created at createdAt, both in unix seconds.
// The unit suffix is always the literal "(s)".
func Since(now, createdAt int64) string {
	diff := now - createdAt
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < minute:
		return fmt.Sprintf("(since %d second(s))", diff)
	case diff < hour:
		return fmt.Sprintf("(since %d minute(s))", diff/minute)
	case diff < day:
		return fmt.Sprintf("(since %d hour(s))", diff/hour)
	default:
		return fmt.Sprintf("(since %d day(s))", diff/day)
	}
}
