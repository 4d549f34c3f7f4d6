package emotion

import (
	"context"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/knowledge"
)

// confidenceRules is how many knowledge-base rules back each confidence
// refinement.
const confidenceRules = 5

// Enhancer refines structure confidence from knowledge-base agreement.
type Enhancer struct {
	base   *knowledge.Base
	logger *zap.Logger
}

// NewEnhancer creates a confidence enhancer over a knowledge base.
func NewEnhancer(base *knowledge.Base, logger *zap.Logger) *Enhancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enhancer{base: base, logger: logger}
}

// EnhanceConfidence sets each structure's confidence to
// 0.5 + 0.5 * mean(similarity) over the top matching rules for the
// structure's feature description, so confidence always lands in
// [0.5, 1.0]. An empty rule set leaves the neutral 0.5. Lookup failures
// are logged and skipped, never propagated.
func (e *Enhancer) EnhanceConfidence(ctx context.Context, structures []analysis.Structure) {
	for i := range structures {
		s := &structures[i]

		results, err := e.base.SearchText(ctx, analysis.Describe(s), confidenceRules)
		if err != nil {
			e.logger.Warn("knowledge lookup failed, keeping neutral confidence",
				zap.String("structure", s.ID), zap.Error(err))
			s.Confidence = 0.5
			continue
		}

		s.Confidence = 0.5
		if len(results) > 0 {
			var sum float64
			for _, r := range results {
				sum += r.Similarity
			}
			s.Confidence = 0.5 + 0.5*(sum/float64(len(results)))
		}
	}
}
