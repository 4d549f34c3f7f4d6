// Package score defines the symbolic score model consumed by the analysis
// engine. A score is an ordered sequence of measures, each holding an ordered
// sequence of notes. The model is treated as immutable input: analysis stages
// read it but never modify it.
package score

// Note is a single pitched event with a duration in beats.
type Note struct {
	// Pitch is scientific pitch notation: letter, optional accidental,
	// octave digit (e.g. "C4", "F#5", "Bb3").
	Pitch string `json:"pitch"`

	// Duration is the note length in beats (1.0 = quarter note).
	Duration float64 `json:"duration"`
}

// Measure is one bar of the score.
type Measure struct {
	// Number is the 1-indexed measure number.
	Number int `json:"number"`

	Notes []Note `json:"notes"`
}

// Score is a parsed symbolic score. Parsing and file formats are the
// caller's concern.
type Score struct {
	Title    string    `json:"title,omitempty"`
	Measures []Measure `json:"measures"`
}

// TotalMeasures returns the measure count.
func (s *Score) TotalMeasures() int {
	return len(s.Measures)
}

// NotesInRange collects the notes of measures [start, end], 1-indexed
// inclusive. Out-of-range bounds are clamped; an inverted range yields nil.
func (s *Score) NotesInRange(start, end int) []Note {
	if start < 1 {
		start = 1
	}
	if end > len(s.Measures) {
		end = len(s.Measures)
	}
	if start > end {
		return nil
	}

	var notes []Note
	for _, m := range s.Measures[start-1 : end] {
		notes = append(notes, m.Notes...)
	}
	return notes
}
