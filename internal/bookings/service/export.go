package service

import (
	"context"
	"strconv"
	"time"

	apperrors "aptbook/pkg/errors"
)

// ExportHeader is the first record of every export.
var ExportHeader = []string{
	"id", "apartment_code", "guest_name", "guest_phone", "guest_email",
	"check_in", "check_out", "booking_type", "price", "notes",
	"is_lock", "parent_id", "created_at",
}

// Export returns all bookings joined with their apartment code, ordered by
// check-in ascending, as a flat record set ready for CSV encoding.
func (s *bookingService) Export(ctx context.Context) ([][]string, error) {
	apartments, err := s.apartments.List(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list apartments for export", "error", err)
		return nil, apperrors.Internal("Failed to retrieve apartments", err)
	}

	codes := make(map[string]string, len(apartments))
	for _, apartment := range apartments {
		codes[apartment.ID] = apartment.Code
	}

	bookings, err := s.repo.FindAll(ctx, "", 0, 0)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings for export", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	records := make([][]string, 0, len(bookings)+1)
	records = append(records, ExportHeader)

	for _, b := range bookings {
		records = append(records, []string{
			b.ID,
			codes[b.ApartmentID],
			b.GuestName,
			b.GuestPhone,
			b.GuestEmail,
			b.CheckIn,
			b.CheckOut,
			string(b.BookingType),
			strconv.FormatFloat(b.Price, 'f', -1, 64),
			b.Notes,
			strconv.FormatBool(b.IsLock),
			b.ParentID,
			b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	s.cfg.Log.Debug("Bookings exported", "rows", len(bookings))
	return records, nil
}
