package external

import (
	"fmt"
	"strings"
	"time"
)

type CFBD_CalendarWeek struct {
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	SeasonType string    `json:"seasonType"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

// CurrentWeek returns the calendar week containing now, or the next week to
// start if now falls between weeks.
func CurrentWeek(calendar []CFBD_CalendarWeek, now time.Time) (*CFBD_CalendarWeek, error) {
	var next *CFBD_CalendarWeek
	for i := range calendar {
		w := &calendar[i]
		if !now.Before(w.StartDate) && now.Before(w.EndDate) {
			return w, nil
		}
		if w.StartDate.After(now) && (next == nil || w.StartDate.Before(next.StartDate)) {
			next = w
		}
	}
	if next == nil {
		return nil, fmt.Errorf("no calendar week at or after %s", now.Format(time.RFC3339))
	}
	return next, nil
}

var startDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseStartDate reads a provider start date, accepting full timestamps and
// bare dates. Results are in UTC.
func ParseStartDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start date %q", s)
}
