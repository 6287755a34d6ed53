package gameService

import (
	"context"
	"errors"
	"testing"
	"time"

	"cfbPickem/services/common"
	"cfbPickem/services/storeService"
)

func addRequest(home, away, kickoff string) AddGameRequest {
	return AddGameRequest{
		Year:         2025,
		Week:         1,
		SeasonType:   "regular",
		HomeTeamID:   home,
		AwayTeamID:   away,
		SpreadTeamID: home,
		Spread:       floatPtr(-7.5),
		KickoffUtc:   kickoff,
	}
}

func TestAddGame_CreatesWeekFromKickoff(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewWeekService(store)

	kickoff := time.Date(2025, 8, 30, 19, 30, 0, 0, time.UTC)
	result, err := svc.AddGame(ctx, addRequest("t1", "t2", kickoff.Format(time.RFC3339)))
	if err != nil {
		t.Fatalf("add game: %v", err)
	}
	if !result.WeekCreated {
		t.Error("expected a new week")
	}

	week, err := store.Weeks().Get(ctx, result.Game.WeekID)
	if err != nil {
		t.Fatalf("get week: %v", err)
	}
	if week.Season != "2025-regular" || week.Description != "Week 1" {
		t.Errorf("unexpected week key %q %q", week.Season, week.Description)
	}
	if !week.PicksOpenUtc.Equal(kickoff.Add(-72 * time.Hour)) {
		t.Errorf("expected open %v, got %v", kickoff.Add(-72*time.Hour), week.PicksOpenUtc)
	}
	if !week.PicksCloseUtc.Equal(kickoff.Add(-2 * time.Hour)) {
		t.Errorf("expected close %v, got %v", kickoff.Add(-2*time.Hour), week.PicksCloseUtc)
	}

	game, err := store.Games().Get(ctx, result.Game.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.WinningTeamID != "t1" {
		t.Errorf("expected winning team to default to home, got %q", game.WinningTeamID)
	}
	if game.Spread != -7.5 || game.SpreadTeamID != "t1" {
		t.Errorf("unexpected spread %v %q", game.Spread, game.SpreadTeamID)
	}
}

func TestAddGame_EarlierGameMovesWindow(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewWeekService(store)

	t1 := time.Date(2025, 8, 30, 19, 30, 0, 0, time.UTC)
	t0 := time.Date(2025, 8, 28, 23, 0, 0, 0, time.UTC)

	first, err := svc.AddGame(ctx, addRequest("t1", "t2", t1.Format(time.RFC3339)))
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	second, err := svc.AddGame(ctx, addRequest("t3", "t4", t0.Format(time.RFC3339)))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if second.WeekCreated {
		t.Error("expected the existing week to be reused")
	}
	if second.Game.WeekID != first.Game.WeekID {
		t.Fatalf("expected same week, got %s and %s", first.Game.WeekID, second.Game.WeekID)
	}
	if !second.WeekUpdated {
		t.Error("expected the week to be updated")
	}

	week, err := store.Weeks().Get(ctx, first.Game.WeekID)
	if err != nil {
		t.Fatalf("get week: %v", err)
	}
	if !week.PicksOpenUtc.Equal(t0.Add(-72*time.Hour)) || !week.PicksCloseUtc.Equal(t0.Add(-2*time.Hour)) {
		t.Errorf("expected window from %v, got %v - %v", t0, week.PicksOpenUtc, week.PicksCloseUtc)
	}

	weeks, _ := storeService.FetchAll(ctx, store.Weeks(), nil)
	if len(weeks) != 1 {
		t.Errorf("expected 1 week, got %d", len(weeks))
	}
}

func TestAddGame_LaterGameLeavesWindow(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewWeekService(store)

	if _, err := svc.AddGame(ctx, addRequest("t1", "t2", "2025-08-30T16:00:00Z")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	result, err := svc.AddGame(ctx, addRequest("t3", "t4", "2025-08-31T00:00:00Z"))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if result.WeekUpdated {
		t.Error("expected no week update for a later kickoff")
	}
}

func TestAddGame_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *AddGameRequest)
		field  string
	}{
		{"MissingYear", func(r *AddGameRequest) { r.Year = 0 }, "year"},
		{"MissingWeek", func(r *AddGameRequest) { r.Week = 0 }, "week"},
		{"MissingSeasonType", func(r *AddGameRequest) { r.SeasonType = "" }, "seasonType"},
		{"MissingHome", func(r *AddGameRequest) { r.HomeTeamID = "" }, "homeTeamId"},
		{"MissingAway", func(r *AddGameRequest) { r.AwayTeamID = "" }, "awayTeamId"},
		{"SameTeams", func(r *AddGameRequest) { r.AwayTeamID = r.HomeTeamID }, "awayTeamId"},
		{"SpreadTeamNotPlaying", func(r *AddGameRequest) { r.SpreadTeamID = "t9" }, "spreadTeamId"},
		{"MissingSpread", func(r *AddGameRequest) { r.Spread = nil }, "spread"},
		{"WinnerNotPlaying", func(r *AddGameRequest) { r.WinningTeamID = "t9" }, "winningTeamId"},
		{"MissingKickoff", func(r *AddGameRequest) { r.KickoffUtc = "" }, "kickoffUtc"},
		{"BadKickoff", func(r *AddGameRequest) { r.KickoffUtc = "saturday" }, "kickoffUtc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := seedStore(t)
			req := addRequest("t1", "t2", "2025-08-30T19:30:00Z")
			tt.mutate(&req)

			_, err := NewWeekService(store).AddGame(ctx, req)
			var validation *common.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validation.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, validation.Field)
			}

			weeks, _ := storeService.FetchAll(ctx, store.Weeks(), nil)
			games, _ := storeService.FetchAll(ctx, store.Games(), nil)
			if len(weeks) != 0 || len(games) != 0 {
				t.Errorf("expected no writes, got %d weeks and %d games", len(weeks), len(games))
			}
		})
	}
}

func TestAddGame_ExplicitWinner(t *testing.T) {
	store := seedStore(t)
	req := addRequest("t1", "t2", "2025-08-30")
	req.WinningTeamID = "t2"

	result, err := NewWeekService(store).AddGame(context.Background(), req)
	if err != nil {
		t.Fatalf("add game: %v", err)
	}
	if result.Game.WinningTeamID != "t2" {
		t.Errorf("expected t2, got %s", result.Game.WinningTeamID)
	}
	if !result.Game.KickoffUtc.Equal(time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected kickoff %v", result.Game.KickoffUtc)
	}
}

func TestRemoveGame_RecomputesWindow(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewWeekService(store)

	early, err := svc.AddGame(ctx, addRequest("t1", "t2", "2025-08-28T23:00:00Z"))
	if err != nil {
		t.Fatalf("add early: %v", err)
	}
	if _, err := svc.AddGame(ctx, addRequest("t3", "t4", "2025-08-30T19:30:00Z")); err != nil {
		t.Fatalf("add late: %v", err)
	}

	if err := svc.RemoveGame(ctx, early.Game.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	week, err := store.Weeks().Get(ctx, early.Game.WeekID)
	if err != nil {
		t.Fatalf("get week: %v", err)
	}
	late := time.Date(2025, 8, 30, 19, 30, 0, 0, time.UTC)
	if !week.PicksOpenUtc.Equal(late.Add(-72 * time.Hour)) {
		t.Errorf("expected window from remaining game, got %v", week.PicksOpenUtc)
	}

	if err := svc.RemoveGame(ctx, early.Game.ID); !errors.Is(err, storeService.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.RemoveGame(ctx, ""); err == nil {
		t.Error("expected validation error for empty id")
	}
}
