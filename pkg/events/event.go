package events

import (
	"time"

	"aptbook/pkg/model"

	"github.com/google/uuid"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// Header keys attached to every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// BookingEvent is the payload published on every booking mutation. Deletes
// carry the cascaded lock booking ids alongside the primary id.
type BookingEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	ApartmentID string    `json:"apartment_id,omitempty"`
	CheckIn     string    `json:"check_in,omitempty"`
	CheckOut    string    `json:"check_out,omitempty"`
	IsLock      bool      `json:"is_lock,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	CascadedIDs []string  `json:"cascaded_ids,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newBookingEvent(eventType string, b *model.Booking) BookingEvent {
	return BookingEvent{
		EventID:     uuid.New().String(),
		Type:        eventType,
		BookingID:   b.ID,
		ApartmentID: b.ApartmentID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		IsLock:      b.IsLock,
		ParentID:    b.ParentID,
		OccurredAt:  time.Now().UTC(),
	}
}
