package testutils

import "github.com/cadenzahq/cadenza/pkg/score"

// BuildMeasure creates a measure of quarter notes from pitch names.
func BuildMeasure(number int, pitches ...string) score.Measure {
	notes := make([]score.Note, 0, len(pitches))
	for _, p := range pitches {
		notes = append(notes, score.Note{Pitch: p, Duration: 1})
	}
	return score.Measure{Number: number, Notes: notes}
}

// BuildScore creates a score where each string slice becomes one measure of
// quarter notes, numbered from 1.
func BuildScore(title string, measures ...[]string) *score.Score {
	s := &score.Score{Title: title}
	for i, pitches := range measures {
		s.Measures = append(s.Measures, BuildMeasure(i+1, pitches...))
	}
	return s
}
