// Package memory provides an in-process vector driver backed by a cosine
// scan. It is the default knowledge-index backend: the catalog is small and
// session-scoped, so a linear scan beats carrying an external index.
//
// Query order is fully deterministic: results sort by descending score with
// insertion order breaking ties. The knowledge base relies on this for
// reproducible rule rankings.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/cadenzahq/cadenza/pkg/vector"
)

// Driver implements vector.Driver with an in-process linear scan.
type Driver struct {
	mu    sync.RWMutex
	docs  []vector.Document
	index map[string]int // ID -> position in docs
}

// NewDriver creates an empty in-memory vector driver.
func NewDriver() *Driver {
	return &Driver{
		index: make(map[string]int),
	}
}

// Add stores documents, updating in place when an ID already exists.
// New documents keep their insertion order for tie-breaking.
func (d *Driver) Add(_ context.Context, docs []vector.Document) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, doc := range docs {
		if pos, ok := d.index[doc.ID]; ok {
			d.docs[pos] = doc
			continue
		}
		d.index[doc.ID] = len(d.docs)
		d.docs = append(d.docs, doc)
	}
	return nil
}

// Query returns the topK documents by cosine similarity, descending, with
// insertion order breaking ties.
func (d *Driver) Query(_ context.Context, embedding []float32, topK int) ([]vector.QueryResult, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if topK <= 0 || len(d.docs) == 0 {
		return nil, nil
	}

	results := make([]vector.QueryResult, 0, len(d.docs))
	for _, doc := range d.docs {
		results = append(results, vector.QueryResult{
			Document: doc,
			Score:    CosineSimilarity(embedding, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Get retrieves documents by ID. Missing IDs are skipped.
func (d *Driver) Get(_ context.Context, ids []string) ([]vector.Document, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]vector.Document, 0, len(ids))
	for _, id := range ids {
		if pos, ok := d.index[id]; ok {
			out = append(out, d.docs[pos])
		}
	}
	return out, nil
}

// Delete removes documents by ID, preserving the relative order of the rest.
func (d *Driver) Delete(_ context.Context, ids []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := d.docs[:0]
	for _, doc := range d.docs {
		if !drop[doc.ID] {
			kept = append(kept, doc)
		}
	}
	d.docs = kept

	d.index = make(map[string]int, len(d.docs))
	for i, doc := range d.docs {
		d.index[doc.ID] = i
	}
	return nil
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}

// CosineSimilarity computes the cosine of the angle between a and b.
// Mismatched lengths or a zero-norm vector on either side score 0.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

var _ vector.Driver = (*Driver)(nil)
