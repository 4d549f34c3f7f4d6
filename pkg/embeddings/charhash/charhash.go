// Package charhash implements a deterministic, dependency-free Embedder.
//
// It hashes character codes into a fixed-size vector and L2-normalizes the
// result. The vectors carry no semantic meaning, but identical text always
// produces bit-identical output, which keeps knowledge-base searches and
// analysis results reproducible when no trained encoder is reachable.
package charhash

import (
	"context"
	"math"
	"strings"

	"github.com/cadenzahq/cadenza/pkg/embeddings"
)

// DefaultDimensions matches the all-minilm embedding width so charhash
// vectors can share an index with encoder vectors.
const DefaultDimensions = 384

// Embedder produces deterministic character-hash embeddings.
type Embedder struct {
	dimensions int
}

// NewEmbedder creates a charhash embedder. Non-positive dims fall back to
// DefaultDimensions.
func NewEmbedder(dims int) *Embedder {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &Embedder{dimensions: dims}
}

// Dimensions returns the vector width this embedder produces.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}

// Embed converts text into a deterministic vector. Whitespace-only or empty
// text yields the zero vector.
func (e *Embedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dimensions)

	words := strings.Fields(text)
	for i, word := range words {
		// index runes by character position, not byte offset
		for j, r := range []rune(word) {
			dim := (int(r) * (i + 1)) % e.dimensions
			if dim < 0 {
				dim += e.dimensions
			}
			vec[dim] += float32(1.0 / float64(j+1))
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := 1.0 / math.Sqrt(norm)
		for i := range vec {
			vec[i] = float32(float64(vec[i]) * inv)
		}
	}

	return vec, nil
}

// Close releases resources held by the embedder.
func (e *Embedder) Close() error {
	return nil
}

var _ embeddings.Embedder = (*Embedder)(nil)
