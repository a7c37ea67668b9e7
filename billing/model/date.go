package model

import "time"

// DateOnly truncates t to a calendar date in UTC. All billing math works
// on whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
