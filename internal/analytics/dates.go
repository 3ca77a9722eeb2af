package analytics

import (
	"strings"
	"time"

	"erp-dashboard/internal/models"
)

var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseCalendarDate parses the textual date forms stores commonly return.
// Dates without a zone are read as UTC.
func ParseCalendarDate(d models.CalendarDate) (time.Time, bool) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey is the first seven characters of the stored date. Shorter values
// are returned whole, so malformed dates form their own bucket.
func MonthKey(d models.CalendarDate) string {
	s := string(d)
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
