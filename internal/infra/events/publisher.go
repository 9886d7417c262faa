package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 10 * time.Second

type Publisher interface {
	Publish(ctx context.Context, evt shared.OutboxEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher when brokers are configured, otherwise a log publisher.
func NewPublisher(cfg config.Config, logger *slog.Logger) Publisher {
	if !cfg.Events.KafkaEnabled() {
		logger.Info("kafka brokers not configured, booking events will be logged only")
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(cfg.Events)
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.EventsConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// Messages are keyed by booking so a booking's created and cancelled events land on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, evt shared.OutboxEvent) error {
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.BookingID, 10)),
		Value: evt.Payload,
		Time:  evt.CreatedAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(evt.Kind)},
			{Key: "event_id", Value: []byte(strconv.FormatInt(evt.ID, 10))},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to write event %d to kafka", evt.ID)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, evt shared.OutboxEvent) error {
	p.logger.InfoContext(ctx, "booking event",
		"event_id", evt.ID,
		"booking_id", evt.BookingID,
		"kind", evt.Kind,
		"payload", string(evt.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
