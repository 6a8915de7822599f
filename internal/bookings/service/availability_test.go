package service

import (
	"context"
	"testing"

	apperrors "aptbook/pkg/errors"
)

func TestCheckAvailability_EmptyStore(t *testing.T) {
	f := newFixture(t)

	entries, err := f.svc.CheckAvailability(context.Background(), "2024-03-01", "2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected an entry per apartment, got %d", len(entries))
	}
	// Registry order: apt-1 then apt-2.
	if entries[0].Apartment.ID != "apt-1" || entries[1].Apartment.ID != "apt-2" {
		t.Errorf("expected registry order apt-1, apt-2, got %s, %s",
			entries[0].Apartment.ID, entries[1].Apartment.ID)
	}
	for _, e := range entries {
		if !e.Available {
			t.Errorf("expected %s available with no bookings", e.Apartment.ID)
		}
		if e.Conflicts == nil || len(e.Conflicts) != 0 {
			t.Errorf("expected empty non-nil conflicts for %s", e.Apartment.ID)
		}
	}
}

func TestCheckAvailability_ReportsConflicts(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CheckIn = "2024-03-01"
	req.CheckOut = "2024-03-05"
	if _, err := f.svc.Create(context.Background(), req); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	entries, err := f.svc.CheckAvailability(context.Background(), "2024-03-03", "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[string]bool{}
	for _, e := range entries {
		byID[e.Apartment.ID] = e.Available
		if e.Apartment.ID == "apt-1" && len(e.Conflicts) != 1 {
			t.Errorf("expected one conflict on apt-1, got %d", len(e.Conflicts))
		}
	}
	if byID["apt-1"] {
		t.Error("expected apt-1 unavailable")
	}
	if !byID["apt-2"] {
		t.Error("expected apt-2 available")
	}
}

func TestCheckAvailability_TouchingRangeIsFree(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CheckIn = "2024-03-01"
	req.CheckOut = "2024-03-05"
	if _, err := f.svc.Create(context.Background(), req); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	entries, err := f.svc.CheckAvailability(context.Background(), "2024-03-05", "2024-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if !e.Available {
			t.Errorf("expected %s available for a touching range", e.Apartment.ID)
		}
	}
}

func TestCheckAvailability_SeesLockBookings(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.BookingType = "1BHK"
	req.BlockApartmentID = "apt-2"
	if _, err := f.svc.Create(context.Background(), req); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	entries, err := f.svc.CheckAvailability(context.Background(), req.CheckIn, req.CheckOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if e.Available {
			t.Errorf("expected %s blocked, the lock counts as a booking", e.Apartment.ID)
		}
	}
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"missing check in", "", "2024-03-05"},
		{"missing check out", "2024-03-01", ""},
		{"malformed check in", "01-03-2024", "2024-03-05"},
		{"malformed check out", "2024-03-01", "2024/03/05"},
		{"reversed range", "2024-03-05", "2024-03-01"},
		{"zero length range", "2024-03-01", "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.CheckAvailability(context.Background(), tt.checkIn, tt.checkOut)
			if !apperrors.IsCode(err, apperrors.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
