package gameService

import (
	"context"
	"errors"
	"log"
	"time"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
	"cfbPickem/services/storeService"
)

// AddGameRequest is the admin payload for adding a game to a week.
type AddGameRequest struct {
	Year          int      `json:"year"`
	Week          int      `json:"week"`
	SeasonType    string   `json:"seasonType"`
	HomeTeamID    string   `json:"homeTeamId"`
	AwayTeamID    string   `json:"awayTeamId"`
	SpreadTeamID  string   `json:"spreadTeamId"`
	Spread        *float64 `json:"spread"`
	WinningTeamID string   `json:"winningTeamId"`
	KickoffUtc    string   `json:"kickoffUtc"`
}

// Validate checks the request and returns the parsed kickoff.
func (r AddGameRequest) Validate() (time.Time, error) {
	switch {
	case r.Year <= 0:
		return time.Time{}, common.NewValidationError("year", "is required")
	case r.Week <= 0:
		return time.Time{}, common.NewValidationError("week", "is required")
	case r.SeasonType == "":
		return time.Time{}, common.NewValidationError("seasonType", "is required")
	case r.HomeTeamID == "":
		return time.Time{}, common.NewValidationError("homeTeamId", "is required")
	case r.AwayTeamID == "":
		return time.Time{}, common.NewValidationError("awayTeamId", "is required")
	case r.HomeTeamID == r.AwayTeamID:
		return time.Time{}, common.NewValidationError("awayTeamId", "must differ from homeTeamId")
	case r.SpreadTeamID == "":
		return time.Time{}, common.NewValidationError("spreadTeamId", "is required")
	case r.SpreadTeamID != r.HomeTeamID && r.SpreadTeamID != r.AwayTeamID:
		return time.Time{}, common.NewValidationError("spreadTeamId", "must be the home or away team")
	case r.Spread == nil:
		return time.Time{}, common.NewValidationError("spread", "is required")
	case r.WinningTeamID != "" && r.WinningTeamID != r.HomeTeamID && r.WinningTeamID != r.AwayTeamID:
		return time.Time{}, common.NewValidationError("winningTeamId", "must be the home or away team")
	case r.KickoffUtc == "":
		return time.Time{}, common.NewValidationError("kickoffUtc", "is required")
	}
	kickoff, err := external.ParseStartDate(r.KickoffUtc)
	if err != nil {
		return time.Time{}, common.NewValidationError("kickoffUtc", "%v", err)
	}
	return kickoff, nil
}

func (r AddGameRequest) key() models.WeekKey {
	return models.WeekKey{Year: r.Year, Number: r.Week, SeasonType: r.SeasonType}
}

type AddGameResult struct {
	Game        models.Game
	Week        models.Week
	WeekCreated bool
	WeekUpdated bool
}

// WeekService owns the admin write path for weeks and games.
type WeekService struct {
	store storeService.Store
}

func NewWeekService(store storeService.Store) *WeekService {
	return &WeekService{store: store}
}

// AddGame validates the request, resolves or creates the week, creates the
// game and then refreshes the week's pick window.
func (s *WeekService) AddGame(ctx context.Context, req AddGameRequest) (*AddGameResult, error) {
	kickoff, err := req.Validate()
	if err != nil {
		return nil, err
	}

	week, created, err := s.ensureWeek(ctx, req.key(), kickoff)
	if err != nil {
		return nil, err
	}

	winner := req.WinningTeamID
	if winner == "" {
		winner = req.HomeTeamID
	}
	game := models.Game{
		WeekID:        week.ID,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		SpreadTeamID:  req.SpreadTeamID,
		Spread:        *req.Spread,
		WinningTeamID: winner,
		KickoffUtc:    kickoff,
	}
	if err := s.store.Games().Create(ctx, &game); err != nil {
		return nil, common.Upstream("store games", err)
	}

	updated, err := s.RecomputeWindow(ctx, week)
	if err != nil {
		return nil, err
	}

	return &AddGameResult{Game: game, Week: *week, WeekCreated: created, WeekUpdated: updated}, nil
}

func (s *WeekService) ensureWeek(ctx context.Context, key models.WeekKey, kickoff time.Time) (*models.Week, bool, error) {
	week, err := FindWeek(ctx, s.store, key)
	if err != nil {
		return nil, false, err
	}
	if week != nil {
		return week, false, nil
	}

	open, closeAt := models.PickWindow(kickoff)
	week = &models.Week{
		Season:        key.Season(),
		Description:   key.Description(),
		PicksOpenUtc:  open,
		PicksCloseUtc: closeAt,
	}
	if err := s.store.Weeks().Create(ctx, week); err != nil {
		return nil, false, common.Upstream("store weeks", err)
	}
	log.Printf("created week %s %s (%s)", week.Season, week.Description, week.ID)
	return week, true, nil
}

// RecomputeWindow sets the week's pick window from the earliest kickoff of
// its games. The week is written only when the window moved; a week without
// games is left alone.
func (s *WeekService) RecomputeWindow(ctx context.Context, week *models.Week) (bool, error) {
	games, err := storeService.FetchAll(ctx, s.store.Games(), storeService.Filter{"week_id": week.ID})
	if err != nil {
		return false, common.Upstream("store games", err)
	}
	if len(games) == 0 {
		return false, nil
	}

	earliest := games[0].KickoffUtc
	for _, g := range games[1:] {
		if g.KickoffUtc.Before(earliest) {
			earliest = g.KickoffUtc
		}
	}

	open, closeAt := models.PickWindow(earliest)
	if week.PicksOpenUtc.Equal(open) && week.PicksCloseUtc.Equal(closeAt) {
		return false, nil
	}
	week.PicksOpenUtc = open
	week.PicksCloseUtc = closeAt
	if err := s.store.Weeks().Update(ctx, week); err != nil {
		return false, common.Upstream("store weeks", err)
	}
	return true, nil
}

// RemoveGame deletes a game and refreshes its week's pick window from the
// games that remain.
func (s *WeekService) RemoveGame(ctx context.Context, gameID string) error {
	if gameID == "" {
		return common.NewValidationError("gameId", "is required")
	}
	game, err := s.store.Games().Get(ctx, gameID)
	if err != nil {
		if errors.Is(err, storeService.ErrNotFound) {
			return err
		}
		return common.Upstream("store games", err)
	}
	if err := s.store.Games().Delete(ctx, gameID); err != nil {
		return common.Upstream("store games", err)
	}

	week, err := s.store.Weeks().Get(ctx, game.WeekID)
	if err != nil {
		if errors.Is(err, storeService.ErrNotFound) {
			log.Printf("game %s referenced missing week %s", gameID, game.WeekID)
			return nil
		}
		return common.Upstream("store weeks", err)
	}
	_, err = s.RecomputeWindow(ctx, &week)
	return err
}

// ListWeeks returns every stored week.
func (s *WeekService) ListWeeks(ctx context.Context) ([]models.Week, error) {
	weeks, err := storeService.FetchAll(ctx, s.store.Weeks(), nil)
	return weeks, common.Upstream("store weeks", err)
}

// WeekGames returns the stored games of a week.
func (s *WeekService) WeekGames(ctx context.Context, weekID string) (models.Week, []models.Game, error) {
	week, err := s.store.Weeks().Get(ctx, weekID)
	if err != nil {
		if errors.Is(err, storeService.ErrNotFound) {
			return models.Week{}, nil, err
		}
		return models.Week{}, nil, common.Upstream("store weeks", err)
	}
	games, err := storeService.FetchAll(ctx, s.store.Games(), storeService.Filter{"week_id": weekID})
	if err != nil {
		return models.Week{}, nil, common.Upstream("store games", err)
	}
	return week, games, nil
}
