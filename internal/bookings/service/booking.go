package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	aptrepo "aptbook/internal/apartments/repository"
	bookingserrors "aptbook/internal/bookings/errors"
	"aptbook/internal/bookings/repository"
	"aptbook/internal/bookings/validator"
	"aptbook/pkg/config"
	apperrors "aptbook/pkg/errors"
	"aptbook/pkg/events"
	"aptbook/pkg/model"
	"aptbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, apartmentID string, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, checkIn, checkOut string) ([]*model.AvailabilityEntry, error)
	Export(ctx context.Context) ([][]string, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	holdRepo   repository.BookingHoldRepository
	apartments aptrepo.ApartmentRepository
	validator  *validator.BookingValidator
	publisher  events.Publisher
	cfg        *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	holdRepo repository.BookingHoldRepository,
	apartments aptrepo.ApartmentRepository,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:       repo,
		holdRepo:   holdRepo,
		apartments: apartments,
		validator:  bookingValidator,
		publisher:  publisher,
		cfg:        cfg,
	}
}

// Create places a primary booking and, for 1BHK bookings with a
// block_apartment_id, a dependent lock booking on the second apartment.
// Both conflict checks and both inserts run in one transaction; a conflict
// on the block apartment aborts the whole operation, leaving zero rows.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := validateRequired(req); err != nil {
		s.cfg.Log.Warn("Booking create rejected", "error", err)
		return nil, err
	}

	booking := s.buildBooking(req)
	if err := s.validate(booking); err != nil {
		return nil, err
	}

	if _, err := s.apartments.FindByID(ctx, booking.ApartmentID); err != nil {
		return nil, s.mapApartmentErr(err, booking.ApartmentID)
	}

	blockApartmentID := ""
	if booking.BookingType.TriggersBlock() && req.BlockApartmentID != "" {
		blockApartmentID = req.BlockApartmentID
		if _, err := s.apartments.FindByID(ctx, blockApartmentID); err != nil {
			return nil, s.mapApartmentErr(err, blockApartmentID)
		}
	}

	holdIDs := []string{booking.ApartmentID}
	if blockApartmentID != "" && blockApartmentID != booking.ApartmentID {
		holdIDs = append(holdIDs, blockApartmentID)
	}
	release, err := s.acquireHolds(ctx, holdIDs)
	if err != nil {
		return nil, err
	}
	defer release()

	var lockBooking *model.Booking
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.ensureNoConflict(sessCtx, booking.ApartmentID, booking.CheckIn, booking.CheckOut, ""); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}

		if blockApartmentID == "" {
			return nil
		}

		if err := s.ensureNoConflict(sessCtx, blockApartmentID, booking.CheckIn, booking.CheckOut, ""); err != nil {
			if apperrors.IsCode(err, apperrors.CodeConflict) {
				return apperrors.Conflict("cannot block requested apartment").WithDetails(map[string]any{
					"apartment_id": blockApartmentID,
					"check_in":     booking.CheckIn,
					"check_out":    booking.CheckOut,
				})
			}
			return err
		}

		lockBooking = &model.Booking{
			ApartmentID: blockApartmentID,
			GuestName:   "LOCKED",
			CheckIn:     booking.CheckIn,
			CheckOut:    booking.CheckOut,
			BookingType: model.TypeLock,
			Price:       0,
			Notes:       fmt.Sprintf("Locked for %s (booking %s)", booking.GuestName, booking.ID),
			IsLock:      true,
			ParentID:    booking.ID,
		}
		if err := s.repo.Create(sessCtx, lockBooking); err != nil {
			return apperrors.Internal("Failed to create lock booking", err)
		}

		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking",
			"apartment_id", booking.ApartmentID,
			"check_in", booking.CheckIn,
			"check_out", booking.CheckOut,
			"error", err,
		)
		return nil, err
	}

	s.publisher.BookingCreated(ctx, booking)
	if lockBooking != nil {
		s.publisher.BookingCreated(ctx, lockBooking)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"apartment_id", booking.ApartmentID,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
		"locked_apartment", blockApartmentID != "" && lockBooking != nil,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapBookingErr(err, id, "Failed to retrieve booking")
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, apartmentID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, apartmentID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, apartmentID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Update merges the provided fields over the existing booking, re-validates
// the result, and re-runs the conflict check excluding the booking itself,
// all before the write commits.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapBookingErr(err, id, "Failed to check booking existence")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeBookingUpdates(existing, updates)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	release, err := s.acquireHolds(ctx, []string{merged.ApartmentID})
	if err != nil {
		return nil, err
	}
	defer release()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.ensureNoConflict(sessCtx, merged.ApartmentID, merged.CheckIn, merged.CheckOut, id); err != nil {
			return err
		}
		if err := s.repo.Update(sessCtx, id, merged); err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Booking", id)
			}
			return apperrors.Internal("Failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, err
	}

	s.publisher.BookingUpdated(ctx, merged)
	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return merged, nil
}

// Delete removes the booking and every dependent lock booking in one
// transaction. A missing id is a no-op success so cascades stay idempotent.
func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	var deleted *model.Booking
	var cascadedIDs []string

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		existing, err := s.repo.FindByID(sessCtx, id)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return nil
			}
			if errors.Is(err, bookingserrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid booking ID format")
			}
			return apperrors.Internal("Failed to check booking existence", err)
		}

		children, err := s.repo.FindByParent(sessCtx, id)
		if err != nil {
			return apperrors.Internal("Failed to find dependent bookings", err)
		}
		for _, child := range children {
			cascadedIDs = append(cascadedIDs, child.ID)
		}

		if _, err := s.repo.DeleteByParent(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete dependent bookings", err)
		}
		if _, err := s.repo.Delete(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete booking", err)
		}

		deleted = existing
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return err
	}

	if deleted == nil {
		s.cfg.Log.Debug("Delete skipped, booking absent", "id", id)
		return nil
	}

	s.publisher.BookingDeleted(ctx, deleted, cascadedIDs)
	s.cfg.Log.Info("Booking deleted successfully", "id", id, "cascaded", len(cascadedIDs))
	return nil
}

// --- Helpers ---

func validateRequired(req *model.BookingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"apartment_id", req.ApartmentID},
		{"guest_name", req.GuestName},
		{"check_in", req.CheckIn},
		{"check_out", req.CheckOut},
	}

	for _, f := range required {
		if f.value == "" {
			return apperrors.Validation(
				fmt.Sprintf("%s is required", f.field),
				map[string]any{"field": f.field},
			)
		}
	}
	return nil
}

func (s *bookingService) buildBooking(req *model.BookingRequest) *model.Booking {
	price := req.Price
	if price < 0 {
		price = 0
	}
	return &model.Booking{
		ApartmentID: req.ApartmentID,
		GuestName:   sanitizer.SanitizeGuestName(req.GuestName),
		GuestPhone:  sanitizer.NormalizePhone(req.GuestPhone),
		GuestEmail:  sanitizer.SanitizeEmail(req.GuestEmail),
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		BookingType: model.NormalizeType(req.BookingType),
		Price:       price,
		Notes:       sanitizer.SanitizeNotes(req.Notes),
	}
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.GuestName != nil {
		merged.GuestName = sanitizer.SanitizeGuestName(*updates.GuestName)
	}
	if updates.GuestPhone != nil {
		merged.GuestPhone = sanitizer.NormalizePhone(*updates.GuestPhone)
	}
	if updates.GuestEmail != nil {
		merged.GuestEmail = sanitizer.SanitizeEmail(*updates.GuestEmail)
	}
	if updates.CheckIn != nil {
		merged.CheckIn = *updates.CheckIn
	}
	if updates.CheckOut != nil {
		merged.CheckOut = *updates.CheckOut
	}
	if updates.BookingType != nil {
		merged.BookingType = model.NormalizeType(*updates.BookingType)
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.Notes != nil {
		merged.Notes = sanitizer.SanitizeNotes(*updates.Notes)
	}

	return &merged
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// ensureNoConflict returns a Conflict error when any existing booking on
// apartmentID overlaps [checkIn, checkOut). Must run inside the same
// transaction as the write it guards.
func (s *bookingService) ensureNoConflict(ctx context.Context, apartmentID, checkIn, checkOut, excludeID string) error {
	existing, err := s.repo.FindOverlapping(ctx, apartmentID, checkIn, checkOut, excludeID)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	if len(existing) == 0 {
		return nil
	}

	first := existing[0]
	return apperrors.Conflict(fmt.Sprintf(
		"Booking dates overlap with existing booking (%s - %s)",
		first.CheckIn, first.CheckOut,
	)).WithDetails(map[string]any{
		"apartment_id": apartmentID,
		"check_in":     checkIn,
		"check_out":    checkOut,
		"conflicts":    len(existing),
	})
}

func (s *bookingService) mapBookingErr(err error, id, internalMsg string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	return apperrors.Internal(internalMsg, err)
}

func (s *bookingService) mapApartmentErr(err error, id string) error {
	if errors.Is(err, aptrepo.ErrNotFound) {
		return apperrors.Validation("apartment does not exist", map[string]any{
			"field":        "apartment_id",
			"apartment_id": id,
		})
	}
	return apperrors.Internal("Failed to verify apartment", err)
}

// acquireHolds takes per-apartment advisory holds in sorted order and
// returns a release func. A hold already present means another request is
// mid-flight on the same apartment.
func (s *bookingService) acquireHolds(ctx context.Context, apartmentIDs []string) (func(), error) {
	ids := append([]string(nil), apartmentIDs...)
	sort.Strings(ids)

	var held []string
	release := func() {
		for _, holdID := range held {
			if err := s.holdRepo.Delete(ctx, holdID); err != nil {
				s.cfg.Log.Warn("Failed to release booking hold", "hold_id", holdID, "error", err)
			}
		}
	}

	for _, apartmentID := range ids {
		holdID := fmt.Sprintf("booking_hold_%s", apartmentID)
		hold := &model.BookingHold{
			ID:        holdID,
			ExpiresAt: time.Now().Add(s.cfg.BookingHoldTTL),
		}

		if _, err := s.holdRepo.Create(ctx, hold); err != nil {
			release()
			if mongo.IsDuplicateKeyError(err) {
				return nil, apperrors.Conflict("This apartment is currently being booked by another request. Please try again.")
			}
			return nil, apperrors.Internal("Failed to acquire booking hold", err)
		}
		held = append(held, holdID)
	}

	return release, nil
}
