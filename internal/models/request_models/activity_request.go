package request_models

import "time"

type CreateActivityRequest struct {
	Title    string    `json:"title" binding:"required,min=4"`
	OccursAt time.Time `json:"occurs_at" binding:"required"`
}
