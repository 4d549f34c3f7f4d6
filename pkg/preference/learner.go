// Package preference implements the session-scoped preference learner: a
// linear weight tally over visual tokens, updated by user accept, modify,
// and reject actions. There is no model and no persistence; weights live
// for one session and feed back into recommendation ordering.
package preference

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/eventstream"
)

// ActionType is one of the three recognized user reactions.
type ActionType string

const (
	// ActionAccept means the user took the recommendation as offered.
	ActionAccept ActionType = "accept"

	// ActionModify means the user kept the recommendation but changed it.
	ActionModify ActionType = "modify"

	// ActionReject means the user discarded it and chose differently.
	ActionReject ActionType = "reject"
)

// Rewards applied per action type.
const (
	rewardAccept = 1.0
	rewardModify = 0.5
	rewardReject = -1.0
)

// UserAction describes one user reaction to a recommended scheme. Tokens
// are the shape, animation, and color names involved: the full scheme for
// accept, the retained subset for modify, the rejected subset for reject.
type UserAction struct {
	Type        ActionType `json:"type"`
	SchemeID    string     `json:"scheme_id,omitempty"`
	SchemeName  string     `json:"scheme_name,omitempty"`
	StructureID string     `json:"structure_id,omitempty"`
	Tokens      []string   `json:"tokens"`
}

// Statistics is the read-only aggregate view of the learner.
type Statistics struct {
	ActionsRecorded int                `json:"actions_recorded"`
	Accepts         int                `json:"accepts"`
	Modifies        int                `json:"modifies"`
	Rejects         int                `json:"rejects"`
	TrackedTokens   int                `json:"tracked_tokens"`
	Weights         map[string]float64 `json:"weights"`
}

// Learner holds the session weight table.
type Learner struct {
	mu        sync.Mutex
	weights   map[string]float64
	session   string
	publisher eventstream.Publisher
	logger    *zap.Logger

	accepts  int
	modifies int
	rejects  int
}

// NewLearner creates an empty learner for a fresh session. Publisher may be
// nil to disable telemetry.
func NewLearner(publisher eventstream.Publisher, logger *zap.Logger) *Learner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Learner{
		weights:   make(map[string]float64),
		session:   uuid.NewString(),
		publisher: publisher,
		logger:    logger,
	}
}

// RecordAction applies the action's reward to every token it names and
// emits a telemetry event. Publish failures are logged, never propagated;
// the weight update always lands.
func (l *Learner) RecordAction(ctx context.Context, action UserAction) {
	reward := rewardFor(action.Type)

	l.mu.Lock()
	for _, token := range action.Tokens {
		l.weights[token] += reward
	}
	switch action.Type {
	case ActionAccept:
		l.accepts++
	case ActionModify:
		l.modifies++
	case ActionReject:
		l.rejects++
	}
	session := l.session
	l.mu.Unlock()

	if l.publisher == nil {
		return
	}

	event := &eventstream.ActionRecordedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeActionRecorded,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Source:        eventstream.EventSource{Session: session, Project: "cadenza"},
		Action: eventstream.ActionDetail{
			ActionType:  string(action.Type),
			SchemeID:    action.SchemeID,
			SchemeName:  action.SchemeName,
			StructureID: action.StructureID,
			Reward:      reward,
		},
	}

	if err := l.publisher.PublishAction(ctx, event); err != nil {
		l.logger.Warn("failed to publish action event", zap.Error(err))
	}
}

func rewardFor(t ActionType) float64 {
	switch t {
	case ActionAccept:
		return rewardAccept
	case ActionModify:
		return rewardModify
	case ActionReject:
		return rewardReject
	default:
		return 0
	}
}

// Snapshot returns a copy of the current weights for the recommender.
func (l *Learner) Snapshot() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]float64, len(l.weights))
	for k, v := range l.weights {
		out[k] = v
	}
	return out
}

// Weight returns one token's current weight, 0 when untracked.
func (l *Learner) Weight(token string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.weights[token]
}

// Clear resets the learner to its initial empty state and starts a new
// session.
func (l *Learner) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.weights = make(map[string]float64)
	l.session = uuid.NewString()
	l.accepts, l.modifies, l.rejects = 0, 0, 0
}

// Statistics exposes read-only aggregate counts.
func (l *Learner) Statistics() Statistics {
	l.mu.Lock()
	defer l.mu.Unlock()

	weights := make(map[string]float64, len(l.weights))
	for k, v := range l.weights {
		weights[k] = v
	}

	return Statistics{
		ActionsRecorded: l.accepts + l.modifies + l.rejects,
		Accepts:         l.accepts,
		Modifies:        l.modifies,
		Rejects:         l.rejects,
		TrackedTokens:   len(l.weights),
		Weights:         weights,
	}
}
