package gameService

import (
	"testing"

	"cfbPickem/models"
	"cfbPickem/models/external"
)

func baseInput(games ...external.CFBD_Game) CurationInput {
	return CurationInput{
		APIGames:    games,
		Teams:       testTeams(),
		Conferences: testConferences(),
		WeekID:      "w1",
	}
}

func apiGame(id int, home, away string) external.CFBD_Game {
	return external.CFBD_Game{ID: id, HomeTeam: home, AwayTeam: away, StartDate: "2025-09-01", Season: 2025, Week: 1, SeasonType: "regular"}
}

func TestFilterAndEnrichGames_NoMatchIsEmpty(t *testing.T) {
	in := baseInput(apiGame(1, "Duke", "Troy"))
	games := FilterAndEnrichGames(in, DefaultPolicy())
	if len(games) != 0 {
		t.Fatalf("expected no games, got %+v", games)
	}
}

func TestFilterAndEnrichGames_UnresolvedTeamsNeverEmitted(t *testing.T) {
	in := baseInput(
		apiGame(1, "Alabama", "Georgia"),
		apiGame(2, "Ohio State", "Texas"),
		apiGame(3, "Alabama", "Texas"),
	)
	in.Rankings = apPoll("Alabama", "Texas", "Ohio State", "Georgia")

	policy := DefaultPolicy()
	policy.Teams = []string{"Alabama", "Texas"}
	policy.Conferences = []string{"SEC", "Big Ten"}

	games := FilterAndEnrichGames(in, policy)
	if len(games) != 0 {
		t.Fatalf("expected unresolved games to be dropped, got %+v", games)
	}
}

func TestFilterAndEnrichGames_RankedTeamAlwaysIncluded(t *testing.T) {
	tests := []struct {
		name   string
		game   external.CFBD_Game
		ranked []string
	}{
		{"HomeRanked", apiGame(1, "Duke", "Troy"), []string{"Duke"}},
		{"AwayRanked", apiGame(2, "Duke", "Troy"), []string{"troy"}},
		{"RankedNameIgnoresSpacing", apiGame(3, "Navy", "Duke"), []string{"  NAVY "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput(tt.game)
			in.Rankings = apPoll(tt.ranked...)

			policy := DefaultPolicy()
			policy.Conferences = nil
			policy.Teams = nil

			games := FilterAndEnrichGames(in, policy)
			if len(games) != 1 || games[0].ID != tt.game.ID {
				t.Fatalf("expected ranked game to be included, got %+v", games)
			}
		})
	}
}

func TestFilterAndEnrichGames_OnlyConfiguredPoll(t *testing.T) {
	in := baseInput(apiGame(1, "Duke", "Troy"))
	in.Rankings = apPoll("Georgia")

	if games := FilterAndEnrichGames(in, DefaultPolicy()); len(games) != 0 {
		t.Fatalf("coaches poll should not count, got %+v", games)
	}

	policy := DefaultPolicy()
	policy.Poll = "coaches poll"
	if games := FilterAndEnrichGames(in, policy); len(games) != 1 {
		t.Fatalf("expected configured poll to include Duke, got %+v", games)
	}
}

func TestFilterAndEnrichGames_ConferenceAndTeamRules(t *testing.T) {
	in := baseInput(
		apiGame(1, "Georgia", "Marshall"),
		apiGame(2, "Navy", "UAB"),
		apiGame(3, "Duke", "Troy"),
		apiGame(4, "Akron", "Troy"),
	)

	games := FilterAndEnrichGames(in, DefaultPolicy())
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %+v", games)
	}
	if games[0].ID != 1 || games[1].ID != 2 {
		t.Errorf("expected games 1 and 2 in provider order, got %d and %d", games[0].ID, games[1].ID)
	}
	if games[0].HomeTeam.ImageURL == nil || *games[0].HomeTeam.ImageURL != "https://img/georgia.png" {
		t.Errorf("expected Georgia image, got %v", games[0].HomeTeam.ImageURL)
	}
	if games[0].AwayTeam.ImageURL != nil {
		t.Errorf("expected no Marshall image, got %v", *games[0].AwayTeam.ImageURL)
	}
	if games[0].StartDate != "2025-09-01" {
		t.Errorf("unexpected start date %q", games[0].StartDate)
	}
}

func TestFilterAndEnrichGames_MissingRankingsDegrade(t *testing.T) {
	in := baseInput(apiGame(1, "Georgia", "Marshall"), apiGame(2, "Duke", "Troy"))
	in.Rankings = []external.CFBD_RankingWeek{{Polls: nil}}

	games := FilterAndEnrichGames(in, DefaultPolicy())
	if len(games) != 1 || games[0].ID != 1 {
		t.Fatalf("expected only the SEC game, got %+v", games)
	}
}

func TestFilterAndEnrichGames_Spread(t *testing.T) {
	in := baseInput(apiGame(1, "Georgia", "Marshall"), apiGame(2, "Navy", "UAB"), apiGame(3, "Ohio State", "Akron"))
	in.Rankings = apPoll("Ohio State")
	in.Lines = []external.CFBD_BettingLines{
		{ID: 1, Lines: []external.CFBD_Line{
			{Provider: "Bovada", FormattedSpread: "Georgia -40"},
			{Provider: "ESPN Bet", FormattedSpread: "Georgia -38.5"},
			{Provider: "draftkings", FormattedSpread: "Georgia -39"},
		}},
		{ID: 2, Lines: []external.CFBD_Line{
			{Provider: "Bovada", FormattedSpread: "UAB +6.5"},
		}},
		{ID: 3, Lines: []external.CFBD_Line{
			{Provider: "DraftKings", FormattedSpread: "Buckeyes -30"},
		}},
	}

	games := FilterAndEnrichGames(in, DefaultPolicy())
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	georgia := games[0].Spread
	if georgia == nil || georgia.Value != -39 || georgia.Team.ID != "t1" || georgia.Formatted != "Georgia -39" {
		t.Errorf("expected primary provider spread, got %+v", georgia)
	}
	uab := games[1].Spread
	if uab == nil || uab.Value != 6.5 || uab.Team.ID != "t5" {
		t.Errorf("expected fallback spread, got %+v", uab)
	}
	if games[2].Spread != nil {
		t.Errorf("expected unresolved spread team to give nil, got %+v", games[2].Spread)
	}
}

func TestFilterAndEnrichGames_InDB(t *testing.T) {
	teams := []models.Team{
		{Record: models.Record{ID: "h1"}, Name: "Georgia", ConferenceID: "c-sec"},
		{Record: models.Record{ID: "a1"}, Name: "Marshall", ConferenceID: "c-sbc"},
	}
	in := CurationInput{
		APIGames:    []external.CFBD_Game{apiGame(1, "Georgia", "Marshall")},
		Teams:       teams,
		Conferences: testConferences(),
		WeekID:      "w1",
		StoredGames: []models.Game{
			{Record: models.Record{ID: "g-other-week"}, HomeTeamID: "h1", AwayTeamID: "a1", WeekID: "w0"},
			{Record: models.Record{ID: "g-swapped"}, HomeTeamID: "a1", AwayTeamID: "h1", WeekID: "w1"},
			{Record: models.Record{ID: "g1"}, HomeTeamID: "h1", AwayTeamID: "a1", WeekID: "w1"},
		},
	}

	games := FilterAndEnrichGames(in, DefaultPolicy())
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if !games[0].InDB || games[0].DBGameID != "g1" {
		t.Errorf("expected inDb with g1, got %v %q", games[0].InDB, games[0].DBGameID)
	}

	in.WeekID = ""
	games = FilterAndEnrichGames(in, DefaultPolicy())
	if games[0].InDB {
		t.Error("expected no match without a week")
	}
}
