package main

import (
	"context"

	aphandler "aptbook/internal/apartments/handler"
	aptrepo "aptbook/internal/apartments/repository"
	aptservice "aptbook/internal/apartments/service"
	"aptbook/internal/bookings/handler"
	"aptbook/internal/bookings/repository"
	"aptbook/internal/bookings/service"
	"aptbook/internal/bookings/validator"
	"aptbook/pkg/app"
	"aptbook/pkg/config"
	"aptbook/pkg/events"
)

const ServiceName = "aptbook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting apartment booking service")

	apartmentService, bookingService, publisher := initServices(cfg)

	if err := apartmentService.Seed(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to seed apartment registry", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		aphandler.NewApartmentHandler(apartmentService, cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

func initServices(cfg *config.Config) (aptservice.ApartmentService, service.BookingService, events.Publisher) {
	apartmentRepo := aptrepo.NewMongoApartmentRepository(cfg)
	apartmentService := aptservice.NewApartmentService(apartmentRepo, cfg)

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	holdRepo := repository.NewBookingHoldRepository(cfg)

	if err := holdRepo.EnsureIndexes(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to create booking hold indexes", "error", err)
	}

	publisher := events.NewPublisher(events.Config{
		Brokers:     cfg.KafkaBrokers,
		Topic:       cfg.KafkaTopic,
		MaxAttempts: cfg.KafkaMaxAttempts,
		Source:      ServiceName,
	}, cfg.Log)

	bookingService := service.NewBookingService(
		bookingRepo,
		holdRepo,
		apartmentRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return apartmentService, bookingService, publisher
}
