package service

import (
	"context"
	"errors"
	"testing"

	"aptbook/internal/apartments/repository"
	"aptbook/pkg/config"
	apperrors "aptbook/pkg/errors"
	"aptbook/pkg/logger"
	"aptbook/pkg/model"
)

type mockApartmentRepo struct {
	seedFn     func(ctx context.Context, seeds []config.ApartmentSeed) error
	findByIDFn func(ctx context.Context, id string) (*model.Apartment, error)
	listFn     func(ctx context.Context) ([]*model.Apartment, error)
}

func (m *mockApartmentRepo) Seed(ctx context.Context, seeds []config.ApartmentSeed) error {
	return m.seedFn(ctx, seeds)
}

func (m *mockApartmentRepo) FindByID(ctx context.Context, id string) (*model.Apartment, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockApartmentRepo) List(ctx context.Context) ([]*model.Apartment, error) {
	return m.listFn(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		Log:            logger.New(logger.Config{Level: "error", Service: "test"}),
		ApartmentSeeds: config.DefaultApartmentSeeds,
	}
}

func TestSeed(t *testing.T) {
	var seeded []config.ApartmentSeed
	repo := &mockApartmentRepo{
		seedFn: func(_ context.Context, seeds []config.ApartmentSeed) error {
			seeded = seeds
			return nil
		},
	}

	svc := NewApartmentService(repo, testConfig())
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seeded) != 2 {
		t.Fatalf("expected two seed apartments, got %d", len(seeded))
	}
	if seeded[0].ID != "apt-1" || seeded[0].Code != "2BHK" {
		t.Errorf("unexpected first seed: %+v", seeded[0])
	}
	if seeded[1].ID != "apt-2" || seeded[1].Code != "1BHK" {
		t.Errorf("unexpected second seed: %+v", seeded[1])
	}
}

func TestSeed_RepoError(t *testing.T) {
	repo := &mockApartmentRepo{
		seedFn: func(_ context.Context, _ []config.ApartmentSeed) error {
			return errors.New("write concern error")
		},
	}

	svc := NewApartmentService(repo, testConfig())
	err := svc.Seed(context.Background())
	if !apperrors.IsCode(err, apperrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo := &mockApartmentRepo{
		findByIDFn: func(_ context.Context, id string) (*model.Apartment, error) {
			if id == "apt-1" {
				return &model.Apartment{ID: "apt-1", Code: "2BHK"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewApartmentService(repo, testConfig())

	apartment, err := svc.GetByID(context.Background(), "apt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apartment.Code != "2BHK" {
		t.Errorf("expected code 2BHK, got %s", apartment.Code)
	}

	_, err = svc.GetByID(context.Background(), "apt-99")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	_, err = svc.GetByID(context.Background(), "")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := &mockApartmentRepo{
		listFn: func(_ context.Context) ([]*model.Apartment, error) {
			return []*model.Apartment{
				{ID: "apt-1", Code: "2BHK"},
				{ID: "apt-2", Code: "1BHK"},
			}, nil
		},
	}
	svc := NewApartmentService(repo, testConfig())

	apartments, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apartments) != 2 {
		t.Fatalf("expected two apartments, got %d", len(apartments))
	}
}
