package model

import "time"

// BookingHold is an advisory per-apartment lock serializing conflict-check-
// then-write sequences. Holds auto-expire via a TTL index on expires_at so a
// crashed request cannot wedge an apartment.
type BookingHold struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
