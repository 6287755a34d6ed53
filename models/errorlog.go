package models

type ErrorLog struct {
	Record
	Source  string `json:"source" gorm:"size:64"`
	Message string `json:"message"`
}
