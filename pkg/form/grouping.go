// Package form groups similar structures and identifies the overall musical
// form from the relationship graph.
package form

import (
	"fmt"

	"github.com/cadenzahq/cadenza/pkg/analysis"
)

// minGroupableStructures is the floor below which grouping is skipped:
// groups over fewer structures carry no formal meaning.
const minGroupableStructures = 4

// groupLabels are assigned sequentially and wrap after E.
var groupLabels = []string{"A", "B", "C", "D", "E"}

// Group is one labeled cluster of structures.
type Group struct {
	GroupID         string   `json:"group_id"`
	StructureIDs    []string `json:"structure_ids"`
	SimilarityScore float64  `json:"similarity_score"`
	CommonFeatures  string   `json:"common_features"`
	Synthetic       bool     `json:"synthetic,omitempty"`
}

// AnalyzeSimilarity clusters structures using the relationship graph.
//
// Relationships classified repeat, or similar with similarity above 0.6,
// are walked greedily in detection order: each one whose endpoints are not
// both already assigned opens a new group holding the unassigned endpoints.
// Structures no qualifying relationship touches stay ungrouped. Fewer than
// four structures skips grouping entirely. When no relationship data exists
// at all, a positional fallback with synthetic scores is used instead.
func AnalyzeSimilarity(structures []analysis.Structure, relationships []analysis.Relationship) []Group {
	if len(structures) < minGroupableStructures {
		return []Group{}
	}

	if len(relationships) == 0 {
		return positionalGroups(structures)
	}

	assigned := map[string]string{}
	var groups []Group

	for _, rel := range relationships {
		if !qualifies(rel) {
			continue
		}

		_, ok1 := assigned[rel.ID1]
		_, ok2 := assigned[rel.ID2]
		if ok1 && ok2 {
			continue
		}

		label := groupLabels[len(groups)%len(groupLabels)]
		group := Group{
			GroupID:         label,
			SimilarityScore: rel.Similarity,
			CommonFeatures:  rel.Description,
		}
		if !ok1 {
			group.StructureIDs = append(group.StructureIDs, rel.ID1)
			assigned[rel.ID1] = label
		}
		if !ok2 {
			group.StructureIDs = append(group.StructureIDs, rel.ID2)
			assigned[rel.ID2] = label
		}
		groups = append(groups, group)
	}

	if groups == nil {
		return []Group{}
	}

	applyLabels(structures, assigned)

	return groups
}

func qualifies(rel analysis.Relationship) bool {
	if rel.Type == analysis.RelationRepeat {
		return true
	}
	return rel.Type == analysis.RelationSimilar && rel.Similarity > 0.6
}

// applyLabels writes group letters back onto the structures.
func applyLabels(structures []analysis.Structure, assigned map[string]string) {
	for i := range structures {
		if label, ok := assigned[structures[i].ID]; ok {
			structures[i].GroupID = label
		}
	}
}

// positionalGroups divides structures into three overlapping windows when
// no relationship data is available. Scores are synthetic, not measured.
func positionalGroups(structures []analysis.Structure) []Group {
	n := len(structures)
	third := n / 3

	windows := [][2]int{
		{0, third + 1},
		{third, 2*third + 1},
		{2 * third, n},
	}

	var groups []Group
	for i, w := range windows {
		start, end := w[0], w[1]
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		group := Group{
			GroupID:         groupLabels[i%len(groupLabels)],
			SimilarityScore: 0.5,
			CommonFeatures:  fmt.Sprintf("positional window %d of 3, no relationship data", i+1),
			Synthetic:       true,
		}
		for _, s := range structures[start:end] {
			group.StructureIDs = append(group.StructureIDs, s.ID)
		}
		groups = append(groups, group)
	}

	return groups
}
