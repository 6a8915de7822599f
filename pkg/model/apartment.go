package model

import "time"

// Apartment is a bookable unit. The set is seeded at startup and read-only
// afterwards; IDs are stable strings so registry order is id ascending.
type Apartment struct {
	ID        string    `json:"id" bson:"_id" validate:"required"`
	Code      string    `json:"code" bson:"code" validate:"required,min=1,max=50"`
	Name      string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}
