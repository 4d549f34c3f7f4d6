// Package analysis segments a score into musical structures and detects the
// relationships between them. All of it is heuristic and deterministic: the
// same score always yields the same structures and relationships.
package analysis

import (
	"fmt"

	"github.com/cadenzahq/cadenza/pkg/score"
)

// Level is the hierarchy level of a structure, finest first.
type Level string

const (
	LevelMotive    Level = "motive"
	LevelSubPhrase Level = "sub_phrase"
	LevelPhrase    Level = "phrase"
	LevelPeriod    Level = "period"
	LevelTheme     Level = "theme"
)

// Structure is one segment of the score. StartMeasure and EndMeasure are
// 1-indexed and inclusive. Confidence, Emotion, and GroupID are attached by
// later stages; the bounds never change after segmentation.
type Structure struct {
	ID           string       `json:"id"`
	Level        Level        `json:"level"`
	StartMeasure int          `json:"start_measure"`
	EndMeasure   int          `json:"end_measure"`
	Notes        []score.Note `json:"notes"`
	Confidence   float64      `json:"confidence"`
	Emotion      string       `json:"emotion,omitempty"`
	GroupID      string       `json:"group_id,omitempty"`
}

// RelationType classifies how two structures relate.
type RelationType string

const (
	RelationRepeat     RelationType = "repeat"
	RelationSimilar    RelationType = "similar"
	RelationContrast   RelationType = "contrast"
	RelationTransition RelationType = "transition"
)

// Relationship links a pair of structures. The pair is unordered for lookup:
// (ID1, ID2) and (ID2, ID1) describe the same relationship.
type Relationship struct {
	ID1         string       `json:"id1"`
	ID2         string       `json:"id2"`
	Type        RelationType `json:"type"`
	Similarity  float64      `json:"similarity"`
	Description string       `json:"description"`
}

// Result bundles the output of one analysis pass.
type Result struct {
	Structures    []Structure    `json:"structures"`
	Relationships []Relationship `json:"relationships"`
}

func structureID(level Level, index int) string {
	return fmt.Sprintf("%s-%d", level, index+1)
}
