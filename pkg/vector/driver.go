// Package vector provides interfaces and implementations for similarity
// indexes over embedding vectors. The knowledge base stores its rule
// embeddings behind a Driver so the backend can be swapped (in-process scan,
// sqlite-vec) without touching retrieval logic.
package vector

import "context"

// Document represents a stored item with its embedding.
type Document struct {
	// ID is a unique identifier for the document (e.g. a theory-rule ID).
	ID string

	// Embedding is the vector representation of the document content.
	Embedding []float32
}

// QueryResult represents a search result with similarity score.
type QueryResult struct {
	Document

	// Score represents the similarity score (higher = more similar).
	Score float32
}

// Driver handles storage and retrieval of vector embeddings.
type Driver interface {
	// Add stores documents with their embeddings.
	// If a document with the same ID already exists, implementers should
	// update the document.
	Add(ctx context.Context, docs []Document) error

	// Query finds the topK most similar documents to the given embedding.
	// Implementations must treat a zero-norm embedding as similarity 0
	// against every document rather than erroring.
	Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error)

	// Get retrieves documents by their IDs.
	Get(ctx context.Context, ids []string) ([]Document, error)

	// Delete removes documents by their IDs.
	Delete(ctx context.Context, ids []string) error

	// Close releases any resources held by the driver.
	Close() error
}
