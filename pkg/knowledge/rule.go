// Package knowledge holds the music-theory rule catalog and its semantic index.
//
// The catalog is hand-authored and immutable after Initialize. Search runs
// against a vector driver populated with deterministic embeddings of each
// rule's description, so ranking stays reproducible without a trained encoder.
package knowledge

// Category classifies a theory rule.
type Category string

const (
	CategoryCadence  Category = "cadence"
	CategoryPhrase   Category = "phrase"
	CategoryForm     Category = "form"
	CategoryTonality Category = "tonality"
	CategoryTexture  Category = "texture"
	CategoryRhythm   Category = "rhythm"
	CategoryMelody   Category = "melody"
)

// Categories lists every rule category in canonical order.
var Categories = []Category{
	CategoryCadence,
	CategoryPhrase,
	CategoryForm,
	CategoryTonality,
	CategoryTexture,
	CategoryRhythm,
	CategoryMelody,
}

// TheoryRule is a static catalog entry describing one music-theory concept.
type TheoryRule struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          Category  `json:"category"`
	ApplicablePeriods []string  `json:"applicable_periods"`
	Confidence        float64   `json:"confidence"`
	Embedding         []float32 `json:"-"`
}

// SearchResult is a rule annotated with the similarity computed for one
// query. Similarity is transient and never written back to the catalog.
type SearchResult struct {
	Rule       TheoryRule `json:"rule"`
	Similarity float64    `json:"similarity"`
}
