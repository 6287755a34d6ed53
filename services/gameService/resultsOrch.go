package gameService

import (
	"context"
	"log"
	"sort"
	"time"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
	"cfbPickem/services/extService"
	"cfbPickem/services/storeService"
)

// CoveringTeam returns the team that won against the spread, or "" on a push.
// The spread applies to game.SpreadTeamID.
func CoveringTeam(game models.Game, homePoints, awayPoints int) string {
	spreadPoints, otherPoints, other := homePoints, awayPoints, game.AwayTeamID
	if game.SpreadTeamID == game.AwayTeamID {
		spreadPoints, otherPoints, other = awayPoints, homePoints, game.HomeTeamID
	}
	adjusted := float64(spreadPoints) + game.Spread
	switch {
	case adjusted > float64(otherPoints):
		return game.SpreadTeamID
	case adjusted < float64(otherPoints):
		return other
	default:
		return ""
	}
}

// ScoreData is the part of the CFBD client the results job reads.
type ScoreData interface {
	GetGames(ctx context.Context, q extService.Query) ([]external.CFBD_Game, error)
}

// GameResult is a stored game that received its final score.
type GameResult struct {
	Game       models.Game
	HomePoints int
	AwayPoints int
}

type ResultRecorder struct {
	store   storeService.Store
	data    ScoreData
	aliases map[string]string
}

func NewResultRecorder(store storeService.Store, data ScoreData, aliases map[string]string) *ResultRecorder {
	return &ResultRecorder{store: store, data: data, aliases: aliases}
}

// RecordResults stores final scores for games that have kicked off and are
// missing a score, and sets each game's winning team against the spread.
// A push leaves the game without a winner.
func (r *ResultRecorder) RecordResults(ctx context.Context, now time.Time) ([]GameResult, error) {
	weeks, err := storeService.FetchAll(ctx, r.store.Weeks(), nil)
	if err != nil {
		return nil, common.Upstream("store weeks", err)
	}

	var index *TeamIndex
	var results []GameResult
	for _, week := range weeks {
		if week.PicksCloseUtc.After(now) {
			continue
		}
		pending, err := r.pendingGames(ctx, week.ID, now)
		if err != nil {
			return results, err
		}
		if len(pending) == 0 {
			continue
		}

		if index == nil {
			index, err = LoadTeamIndex(ctx, r.store, r.aliases)
			if err != nil {
				return results, err
			}
		}
		weekResults, err := r.recordWeek(ctx, week, pending, index)
		results = append(results, weekResults...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// pendingGame is a kicked-off game still missing a final score for at least
// one team. scored holds the teams whose score is already stored.
type pendingGame struct {
	game   models.Game
	scored map[string]bool
}

func (r *ResultRecorder) pendingGames(ctx context.Context, weekID string, now time.Time) ([]pendingGame, error) {
	games, err := storeService.FetchAll(ctx, r.store.Games(), storeService.Filter{"week_id": weekID})
	if err != nil {
		return nil, common.Upstream("store games", err)
	}
	var pending []pendingGame
	for _, g := range games {
		if g.KickoffUtc.After(now) {
			continue
		}
		scored, err := scoredTeams(ctx, r.store, g)
		if err != nil {
			return nil, err
		}
		if !scored[g.HomeTeamID] || !scored[g.AwayTeamID] {
			pending = append(pending, pendingGame{game: g, scored: scored})
		}
	}
	return pending, nil
}

func scoredTeams(ctx context.Context, store storeService.Store, game models.Game) (map[string]bool, error) {
	scores, err := storeService.FetchAll(ctx, store.GameScores(), storeService.Filter{"game_id": game.ID})
	if err != nil {
		return nil, common.Upstream("store game scores", err)
	}
	scored := make(map[string]bool, len(scores))
	for _, score := range scores {
		scored[score.TeamID] = true
	}
	return scored, nil
}

func (r *ResultRecorder) recordWeek(ctx context.Context, week models.Week, pending []pendingGame, teams *TeamIndex) ([]GameResult, error) {
	key, err := models.ParseWeekKey(week)
	if err != nil {
		return nil, err
	}
	apiGames, err := r.data.GetGames(ctx, extService.Query{Year: key.Year, Week: key.Number, SeasonType: key.SeasonType})
	if err != nil {
		return nil, common.Upstream("cfbd games", err)
	}

	type pair struct{ home, away string }
	finals := make(map[pair]external.CFBD_Game, len(apiGames))
	for _, g := range apiGames {
		if !g.Completed || g.HomePoints == nil || g.AwayPoints == nil {
			continue
		}
		home, homeFound := teams.Lookup(g.HomeTeam)
		away, awayFound := teams.Lookup(g.AwayTeam)
		if homeFound && awayFound {
			finals[pair{home.Team.ID, away.Team.ID}] = g
		}
	}

	var results []GameResult
	for _, p := range pending {
		game := p.game
		final, found := finals[pair{game.HomeTeamID, game.AwayTeamID}]
		if !found {
			continue
		}
		homePoints, awayPoints := *final.HomePoints, *final.AwayPoints

		// The winner is settled before any score is written, so a game with
		// both scores always carries its final winner. A push clears it.
		if winner := CoveringTeam(game, homePoints, awayPoints); winner != game.WinningTeamID {
			game.WinningTeamID = winner
			if err := r.store.Games().Update(ctx, &game); err != nil {
				return results, common.Upstream("store games", err)
			}
		}

		for _, score := range []models.GameScore{
			{GameID: game.ID, TeamID: game.HomeTeamID, Score: homePoints},
			{GameID: game.ID, TeamID: game.AwayTeamID, Score: awayPoints},
		} {
			if p.scored[score.TeamID] {
				continue
			}
			score := score
			if err := r.store.GameScores().Create(ctx, &score); err != nil {
				return results, common.Upstream("store game scores", err)
			}
		}

		if game.WinningTeamID == "" {
			log.Printf("game %s final %d-%d, push", game.ID, homePoints, awayPoints)
		} else {
			log.Printf("game %s final %d-%d, winner %s", game.ID, homePoints, awayPoints, game.WinningTeamID)
		}
		results = append(results, GameResult{Game: game, HomePoints: homePoints, AwayPoints: awayPoints})
	}
	return results, nil
}

// Standing is one user's record for a week.
type Standing struct {
	UserID  string `json:"userId"`
	Correct int    `json:"correct"`
	Graded  int    `json:"graded"`
	Picks   int    `json:"picks"`
}

// WeekStandings tallies the week's picks against the winning team of every
// game with both final scores. A pushed game has no winner, so its picks are
// graded but never correct. Ties keep user id order.
func WeekStandings(ctx context.Context, store storeService.Store, weekID string) ([]Standing, error) {
	picks, err := storeService.FetchAll(ctx, store.UserPicks(), storeService.Filter{"week_id": weekID})
	if err != nil {
		return nil, common.Upstream("store user picks", err)
	}
	games, err := storeService.FetchAll(ctx, store.Games(), storeService.Filter{"week_id": weekID})
	if err != nil {
		return nil, common.Upstream("store games", err)
	}

	final := make(map[string]models.Game, len(games))
	for _, g := range games {
		scored, err := scoredTeams(ctx, store, g)
		if err != nil {
			return nil, err
		}
		if scored[g.HomeTeamID] && scored[g.AwayTeamID] {
			final[g.ID] = g
		}
	}

	byUser := make(map[string]*Standing)
	for _, pick := range picks {
		s, found := byUser[pick.UserID]
		if !found {
			s = &Standing{UserID: pick.UserID}
			byUser[pick.UserID] = s
		}
		s.Picks++
		game, graded := final[pick.GameID]
		if !graded {
			continue
		}
		s.Graded++
		if game.WinningTeamID != "" && pick.TeamID == game.WinningTeamID {
			s.Correct++
		}
	}

	standings := make([]Standing, 0, len(byUser))
	for _, s := range byUser {
		standings = append(standings, *s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Correct != standings[j].Correct {
			return standings[i].Correct > standings[j].Correct
		}
		return standings[i].UserID < standings[j].UserID
	})
	return standings, nil
}
