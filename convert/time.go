package convert

import (
	"strings"
	"time"
)

// timeLayouts are tried in order by TimeOf. Values without a zone are read
// as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// TimeOf parses s as a timestamp. RFC 3339, ISO dates with or without a
// time of day, and US-style month/day/year dates are recognised.
func TimeOf(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
