package gameService

import (
	"context"
	"time"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
)

// Calendar is the part of the CFBD client that knows the season's weeks.
type Calendar interface {
	GetCalendar(ctx context.Context, year int) ([]external.CFBD_CalendarWeek, error)
}

// CurrentWeek resolves the provider week in play at now. A zero year means
// now's year.
func CurrentWeek(ctx context.Context, cal Calendar, year int, now time.Time) (models.WeekKey, *external.CFBD_CalendarWeek, error) {
	if year == 0 {
		year = now.Year()
	}
	calendar, err := cal.GetCalendar(ctx, year)
	if err != nil {
		return models.WeekKey{}, nil, common.Upstream("cfbd calendar", err)
	}
	week, err := external.CurrentWeek(calendar, now)
	if err != nil {
		return models.WeekKey{}, nil, common.NewValidationError("year", "%v", err)
	}
	return models.WeekKey{Year: week.Season, Number: week.Week, SeasonType: week.SeasonType}, week, nil
}
