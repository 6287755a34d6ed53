package gameService

import (
	"context"
	"testing"
	"time"

	"cfbPickem/models"
	"cfbPickem/models/external"
)

func TestMatchSpreads(t *testing.T) {
	games := []models.Game{
		{Record: models.Record{ID: "g1"}, HomeTeamID: "t1", AwayTeamID: "t2", SpreadTeamID: "t1", Spread: -38.5},
		{Record: models.Record{ID: "g2"}, HomeTeamID: "t6", AwayTeamID: "t5", SpreadTeamID: "t5", Spread: -3},
		{Record: models.Record{ID: "g3"}, HomeTeamID: "t3", AwayTeamID: "t4", SpreadTeamID: "t3", Spread: -7},
		{Record: models.Record{ID: "g4"}, HomeTeamID: "t7", AwayTeamID: "t8", SpreadTeamID: "t7", Spread: -30},
	}
	lines := []external.CFBD_BettingLines{
		{HomeTeam: "Georgia", AwayTeam: "Marshall", Lines: []external.CFBD_Line{{Provider: "DraftKings", FormattedSpread: "Georgia -40"}}},
		{HomeTeam: "Navy", AwayTeam: "UAB", Lines: []external.CFBD_Line{{Provider: "DraftKings", FormattedSpread: "Navy -1.5"}}},
		{HomeTeam: "Duke", AwayTeam: "Troy", Lines: []external.CFBD_Line{{Provider: "DraftKings", FormattedSpread: "Duke -7"}}},
		{HomeTeam: "Ohio State", AwayTeam: "Akron", Lines: []external.CFBD_Line{{Provider: "DraftKings", FormattedSpread: "Georgia -3"}}},
	}

	changes := MatchSpreads(games, lines, testIndex(), DefaultPolicy())
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %+v", changes)
	}

	if changes[0].Game.ID != "g1" || changes[0].Game.Spread != -40 || changes[0].OldSpread != -38.5 {
		t.Errorf("unexpected first change %+v", changes[0])
	}
	if changes[1].Game.ID != "g2" || changes[1].Game.SpreadTeamID != "t6" || changes[1].OldSpreadTeamID != "t5" {
		t.Errorf("unexpected second change %+v", changes[1])
	}
	if changes[1].Home == nil || changes[1].Home.Team.Name != "Navy" {
		t.Errorf("expected home team attached, got %+v", changes[1].Home)
	}
	if games[0].Spread != -38.5 {
		t.Error("input games must not be modified")
	}
}

func TestLineRefresher_RefreshOpenWeeks(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewWeekService(store)

	now := time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC)
	open, err := svc.AddGame(ctx, addRequest("t1", "t2", "2025-08-30T19:30:00Z"))
	if err != nil {
		t.Fatalf("add open game: %v", err)
	}

	closedReq := addRequest("t1", "t2", "2025-08-20T19:30:00Z")
	closedReq.Week = 99
	closed, err := svc.AddGame(ctx, closedReq)
	if err != nil {
		t.Fatalf("add closed game: %v", err)
	}

	data := &fakeSportsData{lines: []external.CFBD_BettingLines{
		{HomeTeam: "Georgia", AwayTeam: "Marshall", Lines: []external.CFBD_Line{{Provider: "DraftKings", FormattedSpread: "Georgia -10"}}},
	}}

	results, err := NewLineRefresher(store, data, DefaultPolicy(), nil).RefreshOpenWeeks(ctx, now)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(results) != 1 || results[0].Week.ID != open.Week.ID || len(results[0].Changes) != 1 {
		t.Fatalf("expected one change in the open week, got %+v", results)
	}
	if len(data.queries) != 1 || data.queries[0].Week != 1 || data.queries[0].Year != 2025 {
		t.Errorf("expected a single week 1 query, got %+v", data.queries)
	}

	game, err := store.Games().Get(ctx, open.Game.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.Spread != -10 {
		t.Errorf("expected stored spread -10, got %v", game.Spread)
	}
	untouched, err := store.Games().Get(ctx, closed.Game.ID)
	if err != nil {
		t.Fatalf("get closed game: %v", err)
	}
	if untouched.Spread != -7.5 {
		t.Errorf("closed week game should keep its spread, got %v", untouched.Spread)
	}
}
