package db_models

import "time"

type Trip struct {
	BaseModel
	Destination string `gorm:"not null"`
	StartAt     time.Time
	EndsAt      time.Time
	IsConfirmed bool `gorm:"default:false"`

	Participants []Participant
	Activities   []Activity
}
