package models

type User struct {
	Record
	Username string `json:"username" gorm:"size:64;uniqueIndex"`
	Email    string `json:"email" gorm:"size:255"`
}

type UserPick struct {
	Record
	UserID        string `json:"userId" gorm:"size:36;index"`
	GameID        string `json:"gameId" gorm:"size:36;index"`
	WeekID        string `json:"weekId" gorm:"size:36;index"`
	WinningTeamID string `json:"winningTeamId" gorm:"size:36"`
	TeamID        string `json:"teamId" gorm:"size:36"`
}
