package scheduler_jobs

import (
	"context"
	"time"

	"cfbPickem/services/gameService"
	"cfbPickem/services/messageService"
	"cfbPickem/services/storeService"
)

// Deps is what the scheduled jobs run against.
type Deps struct {
	Store     storeService.Store
	Lines     *gameService.LineRefresher
	Results   *gameService.ResultRecorder
	Announcer messageService.Announcer
	Aliases   map[string]string
	Location  *time.Location
	Now       func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

func (d Deps) location() *time.Location {
	if d.Location != nil {
		return d.Location
	}
	return time.UTC
}

func (d Deps) teamIndex(ctx context.Context) (*gameService.TeamIndex, error) {
	return gameService.LoadTeamIndex(ctx, d.Store, d.Aliases)
}
