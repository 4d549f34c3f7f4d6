// Package engine orchestrates one analysis session: segmentation,
// relationship detection, knowledge-enhanced confidence, emotion tagging,
// grouping, form identification, recommendation, and preference feedback.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/embeddings"
	"github.com/cadenzahq/cadenza/pkg/emotion"
	"github.com/cadenzahq/cadenza/pkg/eventstream"
	"github.com/cadenzahq/cadenza/pkg/form"
	"github.com/cadenzahq/cadenza/pkg/knowledge"
	"github.com/cadenzahq/cadenza/pkg/preference"
	"github.com/cadenzahq/cadenza/pkg/score"
	"github.com/cadenzahq/cadenza/pkg/vector"
	"github.com/cadenzahq/cadenza/pkg/visual"
)

// Analysis is the full output of one analysis pass. Re-analysis replaces
// it wholesale; nothing here survives across passes.
type Analysis struct {
	Title         string                  `json:"title,omitempty"`
	Structures    []analysis.Structure    `json:"structures"`
	Relationships []analysis.Relationship `json:"relationships"`
	Emotions      []emotion.Recognition   `json:"emotions"`
	Groups        []form.Group            `json:"groups"`
	Form          string                  `json:"form"`
}

// Engine wires the analysis stages together over one session's state.
type Engine struct {
	embedder embeddings.Embedder
	kb       *knowledge.Base
	enhancer *emotion.Enhancer
	learner  *preference.Learner
	logger   *zap.Logger

	// relTypes remembers each structure's strongest relationship type
	// from the latest pass so recommendations can condition on it.
	relTypes map[string]analysis.RelationType
}

// Config holds the engine's collaborators.
type Config struct {
	Embedder  embeddings.Embedder
	Driver    vector.Driver
	Publisher eventstream.Publisher
	Logger    *zap.Logger
}

// New creates an engine with a fresh preference session.
func New(cfg Config) (*Engine, error) {
	if cfg.Embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if cfg.Driver == nil {
		return nil, fmt.Errorf("vector driver is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	kb := knowledge.NewBase(cfg.Embedder, cfg.Driver, logger)

	return &Engine{
		embedder: cfg.Embedder,
		kb:       kb,
		enhancer: emotion.NewEnhancer(kb, logger),
		learner:  preference.NewLearner(cfg.Publisher, logger),
		relTypes: map[string]analysis.RelationType{},
		logger:   logger,
	}, nil
}

// Knowledge exposes the engine's knowledge base for rule search.
func (e *Engine) Knowledge() *knowledge.Base {
	return e.kb
}

// Analyze runs the full pipeline on a score. Prior analysis state is
// replaced; preference weights survive across passes within the session.
func (e *Engine) Analyze(ctx context.Context, s *score.Score) (*Analysis, error) {
	if err := e.kb.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initializing knowledge base: %w", err)
	}

	result := analysis.Analyze(s)
	e.enhancer.EnhanceConfidence(ctx, result.Structures)
	emotions := emotion.RecognizeEmotions(result.Structures, nil)
	for i := range result.Structures {
		result.Structures[i].Emotion = emotions[i].Primary
	}

	groups := form.AnalyzeSimilarity(result.Structures, result.Relationships)
	label := form.IdentifyForm(result.Structures, result.Relationships)

	e.relTypes = map[string]analysis.RelationType{}
	for _, rel := range result.Relationships {
		e.rememberRelType(rel)
	}

	title := ""
	if s != nil {
		title = s.Title
	}

	e.logger.Info("analysis complete",
		zap.String("title", title),
		zap.Int("structures", len(result.Structures)),
		zap.Int("relationships", len(result.Relationships)),
		zap.String("form", label),
	)

	return &Analysis{
		Title:         title,
		Structures:    result.Structures,
		Relationships: result.Relationships,
		Emotions:      emotions,
		Groups:        groups,
		Form:          label,
	}, nil
}

// rememberRelType keeps the strongest relationship type per structure,
// preferring repeat over contrast over similar.
func (e *Engine) rememberRelType(rel analysis.Relationship) {
	for _, id := range []string{rel.ID1, rel.ID2} {
		current, ok := e.relTypes[id]
		if !ok || relPriority(rel.Type) > relPriority(current) {
			e.relTypes[id] = rel.Type
		}
	}
}

func relPriority(t analysis.RelationType) int {
	switch t {
	case analysis.RelationRepeat:
		return 3
	case analysis.RelationContrast:
		return 2
	case analysis.RelationSimilar:
		return 1
	default:
		return 0
	}
}

// InferEmotion maps aggregate audio features to the rule-based emotion
// triple. Available even when no embedding model ever loads.
func (e *Engine) InferEmotion(features emotion.AudioFeatures) emotion.Profile {
	return emotion.InferEmotion(features)
}

// RecognizeEmotions tags each structure with a primary emotion.
func (e *Engine) RecognizeEmotions(structures []analysis.Structure, audio *emotion.AudioFeatures) []emotion.Recognition {
	return emotion.RecognizeEmotions(structures, audio)
}

// RecommendVisuals returns five ranked schemes for a structure, reading the
// live preference snapshot. StructureID conditions the scheme indexing on
// the structure's relationship type from the latest analysis.
func (e *Engine) RecommendVisuals(profile emotion.Profile, level analysis.Level, structureID string) []visual.Scheme {
	relType := e.relTypes[structureID]
	return visual.Recommend(profile, level, e.learner.Snapshot(), relType)
}

// IdentifyForm infers the overall form label.
func (e *Engine) IdentifyForm(structures []analysis.Structure, relationships []analysis.Relationship) string {
	return form.IdentifyForm(structures, relationships)
}

// AnalyzeSimilarity groups structures from relationship data.
func (e *Engine) AnalyzeSimilarity(structures []analysis.Structure, relationships []analysis.Relationship) []form.Group {
	return form.AnalyzeSimilarity(structures, relationships)
}

// RecordUserAction feeds one user reaction into the preference learner.
func (e *Engine) RecordUserAction(ctx context.Context, action preference.UserAction) {
	e.learner.RecordAction(ctx, action)
}

// ClearPreferences resets the session's preference weights.
func (e *Engine) ClearPreferences() {
	e.learner.Clear()
}

// PreferenceStatistics exposes the learner's aggregate counts.
func (e *Engine) PreferenceStatistics() preference.Statistics {
	return e.learner.Statistics()
}

// Close releases the engine's embedder.
func (e *Engine) Close() error {
	return e.embedder.Close()
}
