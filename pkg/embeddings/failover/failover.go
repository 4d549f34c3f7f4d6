// Package failover wraps a primary Embedder with a deterministic fallback.
//
// A primary failure is logged and absorbed, never propagated: the fallback
// result is returned instead, tagged so callers can surface degradation.
package failover

import (
	"context"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/embeddings"
)

// Embedder tries a primary embedder and falls back on any error.
type Embedder struct {
	primary  embeddings.Embedder
	fallback embeddings.Embedder
	logger   *zap.Logger
}

// NewEmbedder creates a failover embedder. Primary may be nil, in which case
// every embed goes straight to the fallback. Fallback must not be nil.
func NewEmbedder(primary, fallback embeddings.Embedder, logger *zap.Logger) *Embedder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Embedder{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Embed converts text into a vector embedding, preferring the primary.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	result, err := e.EmbedTagged(ctx, text)
	if err != nil {
		return nil, err
	}
	return result.Vector, nil
}

// EmbedTagged embeds text and reports which path produced the vector.
func (e *Embedder) EmbedTagged(ctx context.Context, text string) (embeddings.Result, error) {
	if e.primary != nil {
		vec, err := e.primary.Embed(ctx, text)
		if err == nil {
			return embeddings.Result{Vector: vec, Source: embeddings.SourcePrimary}, nil
		}
		e.logger.Warn("primary embedder failed, using fallback", zap.Error(err))
	}

	vec, err := e.fallback.Embed(ctx, text)
	if err != nil {
		return embeddings.Result{}, err
	}
	return embeddings.Result{Vector: vec, Source: embeddings.SourceFallback}, nil
}

// Close closes both embedders, returning the first error encountered.
func (e *Embedder) Close() error {
	var firstErr error
	if e.primary != nil {
		if err := e.primary.Close(); err != nil {
			firstErr = err
		}
	}
	if err := e.fallback.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

var _ embeddings.Embedder = (*Embedder)(nil)
