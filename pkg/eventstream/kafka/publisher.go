// Package kafka implements an eventstream Publisher backed by Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/eventstream"
)

// DefaultTopic is the topic action events are published to when none is
// configured.
const DefaultTopic = "cadenza.actions"

// Publisher publishes action events to a Kafka topic.
type Publisher struct {
	writer *segmentio.Writer
	logger *zap.Logger
}

// Config holds configuration for the Kafka publisher.
type Config struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string

	// Topic is the topic to publish to. Defaults to DefaultTopic if empty.
	Topic string
}

// NewPublisher creates a Kafka-backed eventstream publisher.
func NewPublisher(cfg Config, logger *zap.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	writer := &segmentio.Writer{
		Addr:     segmentio.TCP(cfg.Brokers...),
		Topic:    topic,
		Balancer: &segmentio.LeastBytes{},
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}, nil
}

// PublishAction serializes the event and writes it to the configured topic,
// keyed by session so a session's actions stay ordered within a partition.
func (p *Publisher) PublishAction(ctx context.Context, event *eventstream.ActionRecordedEvent) error {
	if event == nil {
		return eventstream.ErrNilActionEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling action event: %w", err)
	}

	msg := segmentio.Message{
		Key:   []byte(event.Source.Session),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing action event: %w", err)
	}

	p.logger.Debug("published action event",
		zap.String("event_id", event.EventID),
		zap.String("action_type", event.Action.ActionType),
	)

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ eventstream.Publisher = (*Publisher)(nil)
