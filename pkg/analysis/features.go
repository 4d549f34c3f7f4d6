package analysis

import (
	"math"

	"github.com/cadenzahq/cadenza/pkg/score"
)

// Contour labels for melodic direction.
const (
	ContourAscending  = "ascending"
	ContourDescending = "descending"
	ContourWave       = "wave"
)

// Tempo buckets derived from mean note duration.
const (
	TempoFast     = "fast"
	TempoModerate = "moderate"
	TempoSlow     = "slow"
)

// Contour classifies melodic direction by the majority sign of pairwise
// intervals. Equal up and down counts, or too few notes, read as wave.
func Contour(notes []score.Note) string {
	intervals := score.Intervals(score.MIDISequence(notes))

	var up, down int
	for _, iv := range intervals {
		switch {
		case iv > 0:
			up++
		case iv < 0:
			down++
		}
	}

	switch {
	case up > down:
		return ContourAscending
	case down > up:
		return ContourDescending
	default:
		return ContourWave
	}
}

// TempoBucket coarsely classifies pace from mean note duration.
func TempoBucket(notes []score.Note) string {
	mean := score.MeanDuration(notes)
	switch {
	case mean == 0:
		return TempoModerate
	case mean < 0.5:
		return TempoFast
	case mean > 1.5:
		return TempoSlow
	default:
		return TempoModerate
	}
}

// SelfRepetitive reports whether any contiguous pitch pattern of 2 to 4
// notes recurs at least twice within the structure. Used for descriptions
// only, never for pair matching.
func SelfRepetitive(notes []score.Note) bool {
	seq := score.MIDISequence(notes)
	for patLen := 2; patLen <= 4; patLen++ {
		if len(seq) < patLen*2 {
			break
		}
		counts := map[string]int{}
		for i := 0; i+patLen <= len(seq); i++ {
			key := patternKey(seq[i : i+patLen])
			counts[key]++
			if counts[key] >= 2 {
				return true
			}
		}
	}
	return false
}

func patternKey(pattern []int) string {
	key := make([]byte, 0, len(pattern)*2)
	for _, p := range pattern {
		key = append(key, byte(p), ',')
	}
	return string(key)
}

// pitchSimilarity compares transposition-normalized pitch sequences: the
// fraction of aligned positions that match after anchoring each sequence to
// its first pitch, scaled by the length ratio.
func pitchSimilarity(a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if a[i]-a[0] == b[i]-b[0] {
			matches++
		}
	}

	return float64(matches) / float64(longest)
}

// durationSimilarity compares rhythm: the fraction of aligned positions
// whose durations agree within an eighth-note tolerance, scaled by length
// ratio.
func durationSimilarity(a, b []score.Note) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if math.Abs(a[i].Duration-b[i].Duration) <= 0.125 {
			matches++
		}
	}

	return float64(matches) / float64(longest)
}

// featureOverlap counts how many coarse features two structures share out
// of contour, tempo bucket, and self-repetition.
func featureOverlap(a, b *Structure) float64 {
	shared := 0
	if Contour(a.Notes) == Contour(b.Notes) {
		shared++
	}
	if TempoBucket(a.Notes) == TempoBucket(b.Notes) {
		shared++
	}
	if SelfRepetitive(a.Notes) == SelfRepetitive(b.Notes) {
		shared++
	}
	return float64(shared) / 3
}

// Describe builds the short natural-language description of a structure
// used for knowledge-base lookups.
func Describe(s *Structure) string {
	desc := TempoBucket(s.Notes) + " tempo, " + Contour(s.Notes) + " melodic contour"
	if SelfRepetitive(s.Notes) {
		desc += ", repeating motif"
	}
	return desc
}
