package validator

import (
	"strings"
	"testing"

	"aptbook/pkg/logger"
	"aptbook/pkg/model"
)

func newTestValidator(t *testing.T) *BookingValidator {
	t.Helper()
	return NewBookingValidator(logger.New(logger.Config{Level: "error", Service: "test"}))
}

func validBooking() *model.Booking {
	return &model.Booking{
		ApartmentID: "apt-1",
		GuestName:   "Ravi Kumar",
		GuestEmail:  "ravi@example.com",
		CheckIn:     "2024-03-01",
		CheckOut:    "2024-03-05",
		BookingType: model.TypeTwoBHK,
		Price:       4500,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Booking)
		wantErr string
	}{
		{
			name:   "valid booking",
			mutate: func(b *model.Booking) {},
		},
		{
			name:    "missing apartment id",
			mutate:  func(b *model.Booking) { b.ApartmentID = "" },
			wantErr: "ApartmentID is required",
		},
		{
			name:    "missing guest name",
			mutate:  func(b *model.Booking) { b.GuestName = "" },
			wantErr: "GuestName is required",
		},
		{
			name:    "guest name too long",
			mutate:  func(b *model.Booking) { b.GuestName = strings.Repeat("a", 101) },
			wantErr: "GuestName must be at most 100",
		},
		{
			name:    "invalid email",
			mutate:  func(b *model.Booking) { b.GuestEmail = "not-an-email" },
			wantErr: "GuestEmail must be a valid email address",
		},
		{
			name:    "malformed check in",
			mutate:  func(b *model.Booking) { b.CheckIn = "01/03/2024" },
			wantErr: "CheckIn must be an ISO date (YYYY-MM-DD)",
		},
		{
			name:    "malformed check out",
			mutate:  func(b *model.Booking) { b.CheckOut = "2024-3-5" },
			wantErr: "CheckOut must be an ISO date (YYYY-MM-DD)",
		},
		{
			name:    "checkout before checkin",
			mutate:  func(b *model.Booking) { b.CheckIn, b.CheckOut = "2024-03-05", "2024-03-01" },
			wantErr: "check_out must be after check_in",
		},
		{
			name:    "checkout equals checkin",
			mutate:  func(b *model.Booking) { b.CheckOut = b.CheckIn },
			wantErr: "check_out must be after check_in",
		},
		{
			name:    "negative price",
			mutate:  func(b *model.Booking) { b.Price = -10 },
			wantErr: "Price must be at least 0",
		},
		{
			name:    "lock without parent",
			mutate:  func(b *model.Booking) { b.IsLock = true },
			wantErr: "lock bookings require a parent booking",
		},
		{
			name:    "parent without lock",
			mutate:  func(b *model.Booking) { b.ParentID = "507f1f77bcf86cd799439011" },
			wantErr: "only lock bookings may reference a parent",
		},
		{
			name: "valid lock booking",
			mutate: func(b *model.Booking) {
				b.IsLock = true
				b.ParentID = "507f1f77bcf86cd799439011"
				b.BookingType = model.TypeLock
				b.GuestName = "LOCKED"
				b.Price = 0
			},
		},
	}

	v := newTestValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := v.Validate(b)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	strptr := func(s string) *string { return &s }
	floatptr := func(f float64) *float64 { return &f }

	tests := []struct {
		name    string
		update  *model.BookingUpdate
		wantErr string
	}{
		{
			name:   "empty update",
			update: &model.BookingUpdate{},
		},
		{
			name:   "name only",
			update: &model.BookingUpdate{GuestName: strptr("Meera Shah")},
		},
		{
			name:   "explicit zero price",
			update: &model.BookingUpdate{Price: floatptr(0)},
		},
		{
			name:    "negative price",
			update:  &model.BookingUpdate{Price: floatptr(-1)},
			wantErr: "Price must be at least 0",
		},
		{
			name:    "malformed check in",
			update:  &model.BookingUpdate{CheckIn: strptr("March 1")},
			wantErr: "CheckIn must be an ISO date (YYYY-MM-DD)",
		},
		{
			name: "reversed date pair",
			update: &model.BookingUpdate{
				CheckIn:  strptr("2024-03-05"),
				CheckOut: strptr("2024-03-01"),
			},
			wantErr: "check_out must be after check_in",
		},
		{
			name: "valid date pair",
			update: &model.BookingUpdate{
				CheckIn:  strptr("2024-03-01"),
				CheckOut: strptr("2024-03-05"),
			},
		},
		{
			// A lone check_in is not comparable here; the merged booking
			// is re-validated by the service afterwards.
			name:   "lone check in",
			update: &model.BookingUpdate{CheckIn: strptr("2024-03-05")},
		},
	}

	v := newTestValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.update)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
