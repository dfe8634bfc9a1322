package report

import (
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout renders times as "Saturday, June 24, 2023 11:00:00 AM EDT".
const LocalTimeLayout = "Monday, January 02, 2006 03:04:05 PM MST"

var utcLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// LocalTime converts a UTC timestamp such as "2023-06-24T15:00Z" into loc and
// formats it with LocalTimeLayout. A nil loc means time.Local.
func LocalTime(utc string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	value := strings.TrimSpace(utc)
	for _, layout := range utcLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.In(loc).Format(LocalTimeLayout), nil
		}
	}
	return "", fmt.Errorf("parse start time %q: unsupported format", utc)
}
