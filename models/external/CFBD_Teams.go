package external

type CFBD_Team struct {
	ID             int      `json:"id"`
	School         string   `json:"school"`
	Mascot         string   `json:"mascot"`
	Abbreviation   string   `json:"abbreviation"`
	Conference     string   `json:"conference"`
	Classification string   `json:"classification"`
	Color          string   `json:"color"`
	AltColor       string   `json:"alternateColor"`
	Logos          []string `json:"logos"`
}

type CFBD_Conference struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"shortName"`
	Abbreviation   string `json:"abbreviation"`
	Classification string `json:"classification"`
}
