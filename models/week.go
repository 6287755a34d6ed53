package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	PicksOpenOffset  = 72 * time.Hour
	PicksCloseOffset = 2 * time.Hour
)

type Week struct {
	Record
	Description   string    `json:"description" gorm:"size:64;index:week_key_idx"`
	PicksOpenUtc  time.Time `json:"picksOpenUtc"`
	PicksCloseUtc time.Time `json:"picksCloseUtc"`
	Season        string    `json:"season" gorm:"size:32;index:week_key_idx"`
}

// WeekKey is the canonical identity of a Week: Season is "{year}-{seasonType}"
// and Description is "Week {n}".
type WeekKey struct {
	Year       int
	Number     int
	SeasonType string
}

func (k WeekKey) Season() string {
	return fmt.Sprintf("%d-%s", k.Year, k.SeasonType)
}

func (k WeekKey) Description() string {
	return fmt.Sprintf("Week %d", k.Number)
}

// ParseWeekKey recovers the key from a stored Week.
func ParseWeekKey(w Week) (WeekKey, error) {
	yearStr, seasonType, ok := strings.Cut(w.Season, "-")
	if !ok || seasonType == "" {
		return WeekKey{}, fmt.Errorf("week %s: malformed season %q", w.ID, w.Season)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return WeekKey{}, fmt.Errorf("week %s: malformed season %q: %w", w.ID, w.Season, err)
	}
	numStr, found := strings.CutPrefix(w.Description, "Week ")
	if !found {
		return WeekKey{}, fmt.Errorf("week %s: malformed description %q", w.ID, w.Description)
	}
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return WeekKey{}, fmt.Errorf("week %s: malformed description %q: %w", w.ID, w.Description, err)
	}
	return WeekKey{Year: year, Number: num, SeasonType: seasonType}, nil
}

// PickWindow returns the open and close times derived from the earliest
// kickoff of a week.
func PickWindow(earliestKickoff time.Time) (time.Time, time.Time) {
	k := earliestKickoff.UTC()
	return k.Add(-PicksOpenOffset), k.Add(-PicksCloseOffset)
}
