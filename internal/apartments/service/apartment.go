package service

import (
	"context"
	"errors"

	"aptbook/internal/apartments/repository"
	"aptbook/pkg/config"
	apperrors "aptbook/pkg/errors"
	"aptbook/pkg/model"
)

// ApartmentService is the read-only resource registry. The apartment set is
// created at initialization and never mutated through this service.
type ApartmentService interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*model.Apartment, error)
	GetByID(ctx context.Context, id string) (*model.Apartment, error)
}

type apartmentService struct {
	repo repository.ApartmentRepository
	cfg  *config.Config
}

func NewApartmentService(repo repository.ApartmentRepository, cfg *config.Config) ApartmentService {
	return &apartmentService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *apartmentService) Seed(ctx context.Context) error {
	if err := s.repo.Seed(ctx, s.cfg.ApartmentSeeds); err != nil {
		s.cfg.Log.Error("Failed to seed apartments", "error", err)
		return apperrors.Internal("Failed to seed apartments", err)
	}
	s.cfg.Log.Info("Apartment registry seeded", "count", len(s.cfg.ApartmentSeeds))
	return nil
}

func (s *apartmentService) List(ctx context.Context) ([]*model.Apartment, error) {
	apartments, err := s.repo.List(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list apartments", "error", err)
		return nil, apperrors.Internal("Failed to retrieve apartments", err)
	}
	return apartments, nil
}

func (s *apartmentService) GetByID(ctx context.Context, id string) (*model.Apartment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Apartment ID cannot be empty")
	}

	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Apartment", id)
		}
		return nil, apperrors.Internal("Failed to retrieve apartment", err)
	}
	return apartment, nil
}
