package external

type CFBD_RankingWeek struct {
	Season     int         `json:"season"`
	SeasonType string      `json:"seasonType"`
	Week       int         `json:"week"`
	Polls      []CFBD_Poll `json:"polls"`
}

type CFBD_Poll struct {
	Poll  string      `json:"poll"`
	Ranks []CFBD_Rank `json:"ranks"`
}

type CFBD_Rank struct {
	Rank            int    `json:"rank"`
	TeamID          int    `json:"teamId"`
	School          string `json:"school"`
	Conference      string `json:"conference"`
	FirstPlaceVotes int    `json:"firstPlaceVotes"`
	Points          int    `json:"points"`
}
