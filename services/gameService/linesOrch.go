package gameService

import (
	"context"
	"log"
	"time"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
	"cfbPickem/services/extService"
	"cfbPickem/services/storeService"
)

// SpreadChange records a stored game whose line moved.
type SpreadChange struct {
	Game            models.Game
	Home            *TeamRef
	Away            *TeamRef
	OldSpread       float64
	OldSpreadTeamID string
	Formatted       string
}

// MatchSpreads re-picks the best line for each stored game and returns the
// games whose spread or favored team changed. Games are matched to provider
// lines by resolved home and away team. The returned games carry the new
// values; nothing is written.
func MatchSpreads(games []models.Game, lines []external.CFBD_BettingLines, teams *TeamIndex, policy Policy) []SpreadChange {
	type pair struct{ home, away string }
	byTeams := make(map[pair]external.CFBD_BettingLines, len(lines))
	for _, l := range lines {
		home, homeFound := teams.Lookup(l.HomeTeam)
		away, awayFound := teams.Lookup(l.AwayTeam)
		if !homeFound || !awayFound || len(l.Lines) == 0 {
			continue
		}
		byTeams[pair{home.Team.ID, away.Team.ID}] = l
	}

	var changes []SpreadChange
	for _, game := range games {
		l, found := byTeams[pair{game.HomeTeamID, game.AwayTeamID}]
		if !found {
			continue
		}
		line := policy.PickLine(l.Lines)
		if line == nil || line.FormattedSpread == "" {
			continue
		}
		parsed := ParseFormattedSpread(line.FormattedSpread, teams)
		if parsed == nil || !game.HasParticipant(parsed.SpreadTeamID) {
			continue
		}
		if parsed.Spread == game.Spread && parsed.SpreadTeamID == game.SpreadTeamID {
			continue
		}

		home, _ := teams.ByID(game.HomeTeamID)
		away, _ := teams.ByID(game.AwayTeamID)
		change := SpreadChange{
			Game:            game,
			Home:            home,
			Away:            away,
			OldSpread:       game.Spread,
			OldSpreadTeamID: game.SpreadTeamID,
			Formatted:       line.FormattedSpread,
		}
		change.Game.Spread = parsed.Spread
		change.Game.SpreadTeamID = parsed.SpreadTeamID
		changes = append(changes, change)
	}
	return changes
}

// LineData is the part of the CFBD client the line refresh reads.
type LineData interface {
	GetLines(ctx context.Context, q extService.Query) ([]external.CFBD_BettingLines, error)
}

// WeekLineChanges groups the spread changes applied to one week.
type WeekLineChanges struct {
	Week    models.Week
	Changes []SpreadChange
}

type LineRefresher struct {
	store   storeService.Store
	data    LineData
	policy  Policy
	aliases map[string]string
}

func NewLineRefresher(store storeService.Store, data LineData, policy Policy, aliases map[string]string) *LineRefresher {
	return &LineRefresher{store: store, data: data, policy: policy, aliases: aliases}
}

// RefreshOpenWeeks updates stored spreads for every week whose picks have not
// closed at now. A week that fails is logged and skipped; the first error is
// returned after all weeks have been tried.
func (r *LineRefresher) RefreshOpenWeeks(ctx context.Context, now time.Time) ([]WeekLineChanges, error) {
	weeks, err := storeService.FetchAll(ctx, r.store.Weeks(), nil)
	if err != nil {
		return nil, common.Upstream("store weeks", err)
	}

	var open []models.Week
	for _, w := range weeks {
		if w.PicksCloseUtc.After(now) {
			open = append(open, w)
		}
	}
	if len(open) == 0 {
		return nil, nil
	}

	index, err := LoadTeamIndex(ctx, r.store, r.aliases)
	if err != nil {
		return nil, err
	}

	var results []WeekLineChanges
	var firstErr error
	for _, week := range open {
		changes, err := r.refreshWeek(ctx, week, index)
		if err != nil {
			common.SendError(ctx, r.store, "line refresh "+week.Season+" "+week.Description, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(changes) > 0 {
			results = append(results, WeekLineChanges{Week: week, Changes: changes})
		}
	}
	return results, firstErr
}

func (r *LineRefresher) refreshWeek(ctx context.Context, week models.Week, teams *TeamIndex) ([]SpreadChange, error) {
	key, err := models.ParseWeekKey(week)
	if err != nil {
		return nil, err
	}
	games, err := storeService.FetchAll(ctx, r.store.Games(), storeService.Filter{"week_id": week.ID})
	if err != nil {
		return nil, common.Upstream("store games", err)
	}
	if len(games) == 0 {
		return nil, nil
	}

	lines, err := r.data.GetLines(ctx, extService.Query{Year: key.Year, Week: key.Number, SeasonType: key.SeasonType})
	if err != nil {
		return nil, common.Upstream("cfbd lines", err)
	}

	changes := MatchSpreads(games, lines, teams, r.policy)
	for idx := range changes {
		if err := r.store.Games().Update(ctx, &changes[idx].Game); err != nil {
			return changes[:idx], common.Upstream("store games", err)
		}
		log.Printf("game %s spread moved %s -> %s", changes[idx].Game.ID,
			common.FormatSpread(changes[idx].OldSpread), common.FormatSpread(changes[idx].Game.Spread))
	}
	return changes, nil
}
