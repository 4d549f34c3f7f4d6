package analysis

import (
	"fmt"

	"github.com/cadenzahq/cadenza/pkg/score"
)

const (
	// neighborhoodWindow bounds pairwise comparison so relationship
	// detection stays sub-quadratic on long scores.
	neighborhoodWindow = 8

	// repeatThreshold is the normalized pitch-match level above which a
	// pair counts as a repeat.
	repeatThreshold = 0.85

	// similarThreshold is the secondary-score floor for a similar pair
	// with matching contour.
	similarThreshold = 0.6

	// contrastOverlap is the shared-feature ceiling below which a pair
	// with differing contour counts as a contrast.
	contrastOverlap = 0.4
)

// DetectRelationships compares structures within a bounded neighborhood and
// classifies each qualifying pair. Detection order is fixed: outer index
// ascending, then inner, so results are deterministic for a fixed input.
func DetectRelationships(structures []Structure) []Relationship {
	var rels []Relationship

	for i := range structures {
		for j := i + 1; j < len(structures) && j-i <= neighborhoodWindow; j++ {
			if rel, ok := classifyPair(&structures[i], &structures[j], j == i+1); ok {
				rels = append(rels, rel)
			}
		}
	}

	return rels
}

func classifyPair(a, b *Structure, adjacent bool) (Relationship, bool) {
	pitchA := score.MIDISequence(a.Notes)
	pitchB := score.MIDISequence(b.Notes)

	pitchSim := pitchSimilarity(pitchA, pitchB)
	durSim := durationSimilarity(a.Notes, b.Notes)
	overlap := featureOverlap(a, b)
	contourA, contourB := Contour(a.Notes), Contour(b.Notes)

	base := Relationship{ID1: a.ID, ID2: b.ID}

	if pitchSim >= repeatThreshold {
		base.Type = RelationRepeat
		base.Similarity = pitchSim
		base.Description = fmt.Sprintf("pitch sequences match at %.2f after transposition", pitchSim)
		return base, true
	}

	secondary := (pitchSim + durSim) / 2
	if contourA == contourB && secondary >= similarThreshold {
		base.Type = RelationSimilar
		base.Similarity = secondary
		base.Description = fmt.Sprintf("shared %s contour, pitch and rhythm agree at %.2f", contourA, secondary)
		return base, true
	}

	if contourA != contourB && overlap < contrastOverlap {
		base.Type = RelationContrast
		base.Similarity = overlap
		base.Description = fmt.Sprintf("%s contour against %s, few shared features", contourA, contourB)
		return base, true
	}

	if adjacent {
		base.Type = RelationTransition
		base.Similarity = overlap
		base.Description = fmt.Sprintf("adjacent sections sharing %.0f%% of coarse features", overlap*100)
		return base, true
	}

	return Relationship{}, false
}

// Analyze runs segmentation and relationship detection in one pass.
func Analyze(s *score.Score) Result {
	structures := Segment(s)
	return Result{
		Structures:    structures,
		Relationships: DetectRelationships(structures),
	}
}
