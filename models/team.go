package models

type Team struct {
	Record
	Name         string  `json:"name" gorm:"size:128;index"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	ConferenceID string  `json:"conferenceId" gorm:"size:36;index"`
}

type Conference struct {
	Record
	Name          string  `json:"name" gorm:"size:128;index"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	SmallImageURL *string `json:"smallImageUrl,omitempty"`
}
