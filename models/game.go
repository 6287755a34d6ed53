package models

import "time"

type Game struct {
	Record
	WeekID        string    `json:"weekId" gorm:"size:36;index"`
	HomeTeamID    string    `json:"homeTeamId" gorm:"size:36"`
	AwayTeamID    string    `json:"awayTeamId" gorm:"size:36"`
	SpreadTeamID  string    `json:"spreadTeamId" gorm:"size:36"`
	Spread        float64   `json:"spread"`
	WinningTeamID string    `json:"winningTeamId" gorm:"size:36"`
	KickoffUtc    time.Time `json:"kickoffUtc"`
}

// HasParticipant reports whether teamID plays in the game.
func (g Game) HasParticipant(teamID string) bool {
	return teamID != "" && (teamID == g.HomeTeamID || teamID == g.AwayTeamID)
}

type GameScore struct {
	Record
	GameID string `json:"gameId" gorm:"size:36;index"`
	TeamID string `json:"teamId" gorm:"size:36"`
	Score  int    `json:"score"`
}
