package external

// CFBD_Game is one entry of the /games response. StartDate is kept as the
// provider's string; use ParseStartDate to read it.
type CFBD_Game struct {
	ID                 int     `json:"id"`
	Season             int     `json:"season"`
	Week               int     `json:"week"`
	SeasonType         string  `json:"seasonType"`
	StartDate          string  `json:"startDate"`
	StartTimeTBD       bool    `json:"startTimeTBD"`
	Completed          bool    `json:"completed"`
	NeutralSite        bool    `json:"neutralSite"`
	ConferenceGame     bool    `json:"conferenceGame"`
	Venue              string  `json:"venue"`
	HomeID             int     `json:"homeId"`
	HomeTeam           string  `json:"homeTeam"`
	HomeConference     string  `json:"homeConference"`
	HomeClassification string  `json:"homeClassification"`
	HomePoints         *int    `json:"homePoints"`
	AwayID             int     `json:"awayId"`
	AwayTeam           string  `json:"awayTeam"`
	AwayConference     string  `json:"awayConference"`
	AwayClassification string  `json:"awayClassification"`
	AwayPoints         *int    `json:"awayPoints"`
	Notes              *string `json:"notes"`
}
