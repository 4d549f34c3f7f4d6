package eventstream

import "context"

// Publisher publishes action events to an event stream backend.
type Publisher interface {
	PublishAction(ctx context.Context, event *ActionRecordedEvent) error
	Close() error
}
