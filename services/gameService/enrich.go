package gameService

import (
	"cfbPickem/models"
	"cfbPickem/models/external"
)

type TeamView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type SpreadView struct {
	Value     float64  `json:"value"`
	Team      TeamView `json:"team"`
	Formatted string   `json:"formatted"`
}

// EnrichedGame is one row of the curated slate.
type EnrichedGame struct {
	ID        int         `json:"id"`
	HomeTeam  TeamView    `json:"homeTeam"`
	AwayTeam  TeamView    `json:"awayTeam"`
	StartDate string      `json:"startDate"`
	Spread    *SpreadView `json:"spread"`
	InDB      bool        `json:"inDb"`
	DBGameID  string      `json:"dbGameId,omitempty"`
}

// CurationInput is one snapshot of provider and store data.
type CurationInput struct {
	APIGames    []external.CFBD_Game
	Lines       []external.CFBD_BettingLines
	Rankings    []external.CFBD_RankingWeek
	Teams       []models.Team
	Conferences []models.Conference
	StoredGames []models.Game
	// WeekID is the local week the provider games belong to. Empty when the
	// week has not been created yet, in which case nothing is in the store.
	WeekID  string
	Aliases map[string]string
}

func newTeamView(ref *TeamRef) TeamView {
	return TeamView{ID: ref.Team.ID, Name: ref.Team.Name, ImageURL: ref.Team.ImageURL}
}

type gameKey struct {
	home, away, week string
}

// FilterAndEnrichGames joins provider games against local teams, keeps the
// eligible ones and attaches spreads and store status. It performs no I/O.
func FilterAndEnrichGames(in CurationInput, policy Policy) []EnrichedGame {
	teams := NewTeamIndex(in.Teams, in.Conferences, in.Aliases)
	ranked := policy.RankedSchools(in.Rankings)

	linesByGame := make(map[int][]external.CFBD_Line, len(in.Lines))
	for _, l := range in.Lines {
		if len(l.Lines) > 0 {
			linesByGame[l.ID] = l.Lines
		}
	}

	stored := make(map[gameKey]string, len(in.StoredGames))
	for _, g := range in.StoredGames {
		key := gameKey{g.HomeTeamID, g.AwayTeamID, g.WeekID}
		if _, found := stored[key]; !found {
			stored[key] = g.ID
		}
	}

	games := make([]EnrichedGame, 0)
	for _, apiGame := range in.APIGames {
		home, homeFound := teams.Lookup(apiGame.HomeTeam)
		away, awayFound := teams.Lookup(apiGame.AwayTeam)
		if !homeFound || !awayFound {
			continue
		}
		matchup := Matchup{HomeName: apiGame.HomeTeam, AwayName: apiGame.AwayTeam, Home: home, Away: away}
		if !policy.Eligible(matchup, ranked) {
			continue
		}

		game := EnrichedGame{
			ID:        apiGame.ID,
			HomeTeam:  newTeamView(home),
			AwayTeam:  newTeamView(away),
			StartDate: apiGame.StartDate,
		}

		if line := policy.PickLine(linesByGame[apiGame.ID]); line != nil && line.FormattedSpread != "" {
			if parsed := ParseFormattedSpread(line.FormattedSpread, teams); parsed != nil {
				game.Spread = &SpreadView{
					Value:     parsed.Spread,
					Team:      newTeamView(parsed.Team),
					Formatted: line.FormattedSpread,
				}
			}
		}

		if in.WeekID != "" {
			if id, found := stored[gameKey{home.Team.ID, away.Team.ID, in.WeekID}]; found {
				game.InDB = true
				game.DBGameID = id
			}
		}

		games = append(games, game)
	}
	return games
}
