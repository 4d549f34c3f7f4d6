// Package embeddings
package embeddings

import "context"

// Embedder provides text embedding capabilities.
type Embedder interface {
	// Embed converts text into a vector embedding.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Close releases any resources held by the embedder.
	Close() error
}

// Source identifies which path produced an embedding.
type Source string

const (
	// SourcePrimary means the pre-trained encoder produced the vector.
	SourcePrimary Source = "primary"

	// SourceFallback means the deterministic charhash fallback produced it.
	SourceFallback Source = "fallback"
)

// Result is an embedding tagged with the path that produced it, so callers
// can log degradation without branching on errors.
type Result struct {
	Vector []float32
	Source Source
}
