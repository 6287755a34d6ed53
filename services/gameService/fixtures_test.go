package gameService

import (
	"context"
	"testing"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/storeService"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testConferences() []models.Conference {
	return []models.Conference{
		{Record: models.Record{ID: "c-sec"}, Name: "SEC"},
		{Record: models.Record{ID: "c-acc"}, Name: "ACC"},
		{Record: models.Record{ID: "c-sbc"}, Name: "Sun Belt"},
		{Record: models.Record{ID: "c-aac"}, Name: "American Athletic"},
		{Record: models.Record{ID: "c-b1g"}, Name: "Big Ten"},
	}
}

func testTeams() []models.Team {
	return []models.Team{
		{Record: models.Record{ID: "t1"}, Name: "Georgia", ConferenceID: "c-sec", ImageURL: strPtr("https://img/georgia.png")},
		{Record: models.Record{ID: "t2"}, Name: "Marshall", ConferenceID: "c-sbc"},
		{Record: models.Record{ID: "t3"}, Name: "Duke", ConferenceID: "c-acc"},
		{Record: models.Record{ID: "t4"}, Name: "Troy", ConferenceID: "c-sbc"},
		{Record: models.Record{ID: "t5"}, Name: "UAB", ConferenceID: "c-aac"},
		{Record: models.Record{ID: "t6"}, Name: "Navy", ConferenceID: "c-aac"},
		{Record: models.Record{ID: "t7"}, Name: "Ohio State", ConferenceID: "c-b1g"},
		{Record: models.Record{ID: "t8"}, Name: "Akron", ConferenceID: ""},
	}
}

func testIndex() *TeamIndex {
	return NewTeamIndex(testTeams(), testConferences(), nil)
}

func apPoll(schools ...string) []external.CFBD_RankingWeek {
	var ranks []external.CFBD_Rank
	for i, s := range schools {
		ranks = append(ranks, external.CFBD_Rank{Rank: i + 1, School: s})
	}
	return []external.CFBD_RankingWeek{{
		Season: 2025, SeasonType: "regular", Week: 1,
		Polls: []external.CFBD_Poll{
			{Poll: "Coaches Poll", Ranks: []external.CFBD_Rank{{Rank: 1, School: "Duke"}}},
			{Poll: "AP Top 25", Ranks: ranks},
		},
	}}
}

// seedStore loads the fixture teams and conferences into a fresh mem store.
func seedStore(t *testing.T) *storeService.MemStore {
	t.Helper()
	ctx := context.Background()
	store := storeService.NewMemStore()
	for _, c := range testConferences() {
		c := c
		if err := store.Conferences().Create(ctx, &c); err != nil {
			t.Fatalf("seed conference: %v", err)
		}
	}
	for _, team := range testTeams() {
		team := team
		if err := store.Teams().Create(ctx, &team); err != nil {
			t.Fatalf("seed team: %v", err)
		}
	}
	return store
}
