package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	BaseModel
	Title    string `gorm:"not null"`
	OccursAt time.Time
	TripID   uuid.UUID `gorm:"type:uuid;index"`
}
