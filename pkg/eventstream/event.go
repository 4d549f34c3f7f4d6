package eventstream

import "time"

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeActionRecorded is emitted after a user action is recorded
	// against the preference learner.
	EventTypeActionRecorded = "cadenza.action.recorded"
)

// ActionRecordedEvent is a transport-neutral event payload for a recorded
// user action.
type ActionRecordedEvent struct {
	SchemaVersion int          `json:"schema_version"`
	EventType     string       `json:"event_type"`
	EventID       string       `json:"event_id"`
	EmittedAt     time.Time    `json:"emitted_at"`
	Source        EventSource  `json:"source"`
	Action        ActionDetail `json:"action"`
}

// EventSource identifies the session the action originated from.
type EventSource struct {
	Session string `json:"session,omitempty"`
	Project string `json:"project,omitempty"`
}

// ActionDetail captures what the user did with a recommended scheme.
type ActionDetail struct {
	ActionType  string  `json:"action_type"`
	SchemeID    string  `json:"scheme_id,omitempty"`
	SchemeName  string  `json:"scheme_name,omitempty"`
	StructureID string  `json:"structure_id,omitempty"`
	Reward      float64 `json:"reward"`
}
