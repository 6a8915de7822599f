package model

import (
	"time"
)

// Booking reserves one apartment for the half-open date interval
// [CheckIn, CheckOut). Lock bookings are system-generated rows holding a
// second apartment on behalf of a parent booking; IsLock is true exactly
// when ParentID is set.
type Booking struct {
	ID          string      `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ApartmentID string      `json:"apartment_id" bson:"apartment_id" validate:"required"`
	GuestName   string      `json:"guest_name" bson:"guest_name" validate:"required,min=1,max=100"`
	GuestPhone  string      `json:"guest_phone,omitempty" bson:"guest_phone,omitempty" validate:"omitempty,max=20"`
	GuestEmail  string      `json:"guest_email,omitempty" bson:"guest_email,omitempty" validate:"omitempty,email"`
	CheckIn     string      `json:"check_in" bson:"check_in" validate:"required,bookdate"`
	CheckOut    string      `json:"check_out" bson:"check_out" validate:"required,bookdate"`
	BookingType BookingType `json:"booking_type" bson:"booking_type" validate:"required,min=1,max=20"`
	Price       float64     `json:"price" bson:"price" validate:"omitempty,min=0"`
	Notes       string      `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=500"`
	IsLock      bool        `json:"is_lock" bson:"is_lock"`
	ParentID    string      `json:"parent_id,omitempty" bson:"parent_id,omitempty" validate:"omitempty,mongodb"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingRequest is the orchestrator input for creating a booking. When
// BookingType normalizes to 1BHK and BlockApartmentID is set, a dependent
// lock booking is placed on the second apartment in the same transaction.
type BookingRequest struct {
	ApartmentID      string  `json:"apartment_id"`
	GuestName        string  `json:"guest_name"`
	GuestPhone       string  `json:"guest_phone,omitempty"`
	GuestEmail       string  `json:"guest_email,omitempty"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	BookingType      string  `json:"booking_type,omitempty"`
	Price            float64 `json:"price,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	BlockApartmentID string  `json:"block_apartment_id,omitempty"`
}

// BookingUpdate carries a partial update. Pointer fields distinguish
// "absent" from zero values: only fields present in the request payload are
// merged over the existing booking.
type BookingUpdate struct {
	GuestName   *string  `json:"guest_name,omitempty" validate:"omitempty,min=1,max=100"`
	GuestPhone  *string  `json:"guest_phone,omitempty" validate:"omitempty,max=20"`
	GuestEmail  *string  `json:"guest_email,omitempty" validate:"omitempty,email"`
	CheckIn     *string  `json:"check_in,omitempty" validate:"omitempty,bookdate"`
	CheckOut    *string  `json:"check_out,omitempty" validate:"omitempty,bookdate"`
	BookingType *string  `json:"booking_type,omitempty" validate:"omitempty,min=1,max=20"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// AvailabilityEntry reports one apartment's state for a queried date range.
type AvailabilityEntry struct {
	Apartment Apartment  `json:"apartment"`
	Available bool       `json:"available"`
	Conflicts []*Booking `json:"conflicts"`
}
