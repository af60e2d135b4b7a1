package db_models

import "github.com/google/uuid"

type Participant struct {
	BaseModel
	Name        string
	Email       string    `gorm:"not null"`
	IsOwner     bool      `gorm:"default:false"`
	IsConfirmed bool      `gorm:"default:false"`
	TripID      uuid.UUID `gorm:"type:uuid;index"`
}
