package events

import (
	"context"
	"encoding/json"
	"time"

	"aptbook/pkg/logger"
	"aptbook/pkg/model"

	"github.com/segmentio/kafka-go"
)

// Publisher emits booking lifecycle events. Publishing is best-effort:
// failures are logged and never fail the mutation that triggered them.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingUpdated(ctx context.Context, booking *model.Booking)
	BookingDeleted(ctx context.Context, booking *model.Booking, cascadedIDs []string)
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

type Config struct {
	Brokers     []string
	Topic       string
	MaxAttempts int
	Source      string
}

// NewPublisher returns a kafka-backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher(cfg Config, log *logger.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		log.Info("Booking event publishing disabled, no Kafka brokers configured")
		return noopPublisher{}
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // hash by booking id keeps per-booking ordering
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  maxAttempts,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "detail", msg)
		}),
	}

	log.Info("Booking event publishing enabled", "topic", cfg.Topic, "brokers", cfg.Brokers)
	return &kafkaPublisher{
		writer: writer,
		source: cfg.Source,
		log:    log,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, newBookingEvent(TypeBookingCreated, booking))
}

func (p *kafkaPublisher) BookingUpdated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, newBookingEvent(TypeBookingUpdated, booking))
}

func (p *kafkaPublisher) BookingDeleted(ctx context.Context, booking *model.Booking, cascadedIDs []string) {
	event := newBookingEvent(TypeBookingDeleted, booking)
	event.CascadedIDs = cascadedIDs
	p.publish(ctx, event)
}

func (p *kafkaPublisher) publish(ctx context.Context, event BookingEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode booking event", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking event published", "type", event.Type, "booking_id", event.BookingID)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) BookingCreated(context.Context, *model.Booking)            {}
func (noopPublisher) BookingUpdated(context.Context, *model.Booking)            {}
func (noopPublisher) BookingDeleted(context.Context, *model.Booking, []string)  {}
func (noopPublisher) Close() error                                              { return nil }
