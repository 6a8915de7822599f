package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "aptbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingHoldTTL = 10 * time.Second

	DefaultKafkaTopic       = "booking-events"
	DefaultKafkaMaxAttempts = 3

	DefaultPaginationLimit = 50
	MaxPaginationLimit     = 200
)

// ApartmentSeed describes one unit of the fixed registry created at startup.
type ApartmentSeed struct {
	ID   string
	Code string
	Name string
}

// DefaultApartmentSeeds is the single-property unit set. IDs are stable so
// registry order (id ascending) never changes across restarts.
var DefaultApartmentSeeds = []ApartmentSeed{
	{ID: "apt-1", Code: "2BHK", Name: "Two Bedroom Apartment"},
	{ID: "apt-2", Code: "1BHK", Name: "One Bedroom Apartment"},
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		return DefaultPaginationLimit
	}
	if limit > MaxPaginationLimit {
		return MaxPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	if offset < 0 {
		return 0
	}
	return offset
}
