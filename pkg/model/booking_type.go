package model

import "strings"

// BookingType labels a booking. The known values carry behavior: OneBHK
// triggers the block-apartment step on create, Lock marks system-generated
// dependent rows. Anything else is a free-form label kept uppercased.
type BookingType string

const (
	TypeTwoBHK BookingType = "2BHK"
	TypeOneBHK BookingType = "1BHK"
	TypeLock   BookingType = "LOCK"
)

// NormalizeType uppercases a raw label and applies the default type when
// the label is empty.
func NormalizeType(raw string) BookingType {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return TypeTwoBHK
	}
	return BookingType(raw)
}

// TriggersBlock reports whether creating a booking of this type should
// attempt to place a lock booking on a second apartment.
func (t BookingType) TriggersBlock() bool {
	return t == TypeOneBHK
}

func (t BookingType) IsLock() bool {
	return t == TypeLock
}
