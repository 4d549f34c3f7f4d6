package knowledge

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/embeddings"
	"github.com/cadenzahq/cadenza/pkg/vector"
)

// Base is the searchable rule catalog. Rules are loaded into the vector
// driver by Initialize and are immutable afterwards.
type Base struct {
	embedder embeddings.Embedder
	driver   vector.Driver
	logger   *zap.Logger

	mu          sync.Mutex
	rules       []TheoryRule
	byID        map[string]int
	initialized bool
}

// NewBase creates a knowledge base over the given embedder and vector driver.
func NewBase(embedder embeddings.Embedder, driver vector.Driver, logger *zap.Logger) *Base {
	if logger == nil {
		logger = zap.NewNop()
	}

	rules := Catalog()
	byID := make(map[string]int, len(rules))
	for i, r := range rules {
		byID[r.ID] = i
	}

	return &Base{
		embedder: embedder,
		driver:   driver,
		logger:   logger,
		rules:    rules,
		byID:     byID,
	}
}

// Initialize embeds every catalog rule and loads the vectors into the
// driver. A second call is a no-op.
func (b *Base) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	docs := make([]vector.Document, 0, len(b.rules))
	for i := range b.rules {
		rule := &b.rules[i]
		vec, err := b.embedder.Embed(ctx, rule.Name+". "+rule.Description)
		if err != nil {
			return fmt.Errorf("embedding rule %s: %w", rule.ID, err)
		}
		rule.Embedding = vec
		docs = append(docs, vector.Document{ID: rule.ID, Embedding: vec})
	}

	if err := b.driver.Add(ctx, docs); err != nil {
		return fmt.Errorf("indexing rules: %w", err)
	}

	b.initialized = true
	b.logger.Info("knowledge base initialized", zap.Int("rules", len(b.rules)))

	return nil
}

// SearchRules returns at most topK rules ranked by cosine similarity to the
// query vector, descending, ties in catalog order. A zero-norm query scores
// 0 against everything and still returns the first topK rules by order.
func (b *Base) SearchRules(ctx context.Context, queryVec []float32, topK int) ([]SearchResult, error) {
	if err := b.Initialize(ctx); err != nil {
		return nil, err
	}

	hits, err := b.driver.Query(ctx, queryVec, topK)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		idx, ok := b.byID[hit.ID]
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Rule:       b.rules[idx],
			Similarity: float64(hit.Score),
		})
	}

	return results, nil
}

// SearchText embeds the query text and delegates to SearchRules.
func (b *Base) SearchText(ctx context.Context, query string, topK int) ([]SearchResult, error) {
	queryVec, err := b.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return b.SearchRules(ctx, queryVec, topK)
}

// SearchByCategory returns all rules of a category in catalog order.
func (b *Base) SearchByCategory(category Category) []TheoryRule {
	var out []TheoryRule
	for _, r := range b.rules {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Rule looks up a catalog rule by ID.
func (b *Base) Rule(id string) (TheoryRule, bool) {
	idx, ok := b.byID[id]
	if !ok {
		return TheoryRule{}, false
	}
	return b.rules[idx], true
}

// Len returns the catalog size.
func (b *Base) Len() int {
	return len(b.rules)
}
