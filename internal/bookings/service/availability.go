package service

import (
	"context"

	apperrors "aptbook/pkg/errors"
	"aptbook/pkg/model"
)

// CheckAvailability reports, for every apartment in registry order, whether
// [checkIn, checkOut) is free and which bookings conflict with it.
func (s *bookingService) CheckAvailability(ctx context.Context, checkIn, checkOut string) ([]*model.AvailabilityEntry, error) {
	if err := validateDateRange(checkIn, checkOut); err != nil {
		s.cfg.Log.Warn("Availability query rejected", "check_in", checkIn, "check_out", checkOut, "error", err)
		return nil, err
	}

	apartments, err := s.apartments.List(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list apartments for availability", "error", err)
		return nil, apperrors.Internal("Failed to retrieve apartments", err)
	}

	entries := make([]*model.AvailabilityEntry, 0, len(apartments))
	for _, apartment := range apartments {
		conflicts, err := s.repo.FindOverlapping(ctx, apartment.ID, checkIn, checkOut, "")
		if err != nil {
			s.cfg.Log.Error("Failed to check availability",
				"apartment_id", apartment.ID,
				"error", err,
			)
			return nil, apperrors.Internal("Failed to check availability", err)
		}
		if conflicts == nil {
			conflicts = []*model.Booking{}
		}

		entries = append(entries, &model.AvailabilityEntry{
			Apartment: *apartment,
			Available: len(conflicts) == 0,
			Conflicts: conflicts,
		})
	}

	return entries, nil
}

func validateDateRange(checkIn, checkOut string) error {
	if checkIn == "" {
		return apperrors.Validation("check_in is required", map[string]any{"field": "check_in"})
	}
	if checkOut == "" {
		return apperrors.Validation("check_out is required", map[string]any{"field": "check_out"})
	}
	if !model.ValidDate(checkIn) {
		return apperrors.Validation("check_in must be an ISO date (YYYY-MM-DD)", map[string]any{"field": "check_in"})
	}
	if !model.ValidDate(checkOut) {
		return apperrors.Validation("check_out must be an ISO date (YYYY-MM-DD)", map[string]any{"field": "check_out"})
	}
	if checkOut <= checkIn {
		return apperrors.Validation("check_out must be after check_in", map[string]any{
			"check_in":  checkIn,
			"check_out": checkOut,
		})
	}
	return nil
}
