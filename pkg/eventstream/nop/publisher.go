package nop

import (
	"context"

	"github.com/cadenzahq/cadenza/pkg/eventstream"
)

// Publisher is a no-op eventstream publisher used for tests and disabled mode.
type Publisher struct{}

// NewPublisher creates a new no-op eventstream publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishAction validates input and otherwise does nothing.
func (p *Publisher) PublishAction(_ context.Context, event *eventstream.ActionRecordedEvent) error {
	if event == nil {
		return eventstream.ErrNilActionEvent
	}

	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
