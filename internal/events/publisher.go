package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"eatery/internal/config"
	"eatery/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Publisher пишет события переходов в kafka. Ключ — номер заказа,
// события одного заказа попадают в одну партицию и сохраняют порядок.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("service", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, ev entities.OrderEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderNumber),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	p.logger.Debug("order event published",
		slog.String("number", ev.OrderNumber),
		slog.String("new_status", string(ev.NewStatus)),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
