package analysis

import (
	"github.com/cadenzahq/cadenza/pkg/score"
)

// maxPhraseMeasures forces a boundary so phrases never run past the length
// listeners expect.
const maxPhraseMeasures = 4

// Segment partitions the score into an ordered sequence of structures.
//
// A boundary falls after a measure that ends in a cadential long note (final
// note at least twice the score's mean duration), after an empty measure,
// or once a segment reaches four measures. Every measure belongs to exactly
// one structure: bounds are monotone with no gaps or overlaps. An empty
// score yields an empty slice.
func Segment(s *score.Score) []Structure {
	if s == nil || s.TotalMeasures() == 0 {
		return []Structure{}
	}

	var allNotes []score.Note
	for _, m := range s.Measures {
		allNotes = append(allNotes, m.Notes...)
	}
	meanDur := score.MeanDuration(allNotes)

	var structures []Structure
	start := 1
	total := s.TotalMeasures()

	for i, m := range s.Measures {
		num := i + 1
		if !boundaryAfter(m, meanDur, num-start+1) && num != total {
			continue
		}

		notes := s.NotesInRange(start, num)
		level := levelForSpan(num - start + 1)
		structures = append(structures, Structure{
			ID:           structureID(level, len(structures)),
			Level:        level,
			StartMeasure: start,
			EndMeasure:   num,
			Notes:        notes,
			Confidence:   0.5,
		})
		start = num + 1
	}

	return structures
}

// boundaryAfter reports whether segmentation should close a structure after
// this measure.
func boundaryAfter(m score.Measure, meanDur float64, span int) bool {
	if len(m.Notes) == 0 {
		return true
	}
	if span >= maxPhraseMeasures {
		return true
	}
	last := m.Notes[len(m.Notes)-1]
	if meanDur > 0 && last.Duration >= 2*meanDur {
		return true
	}
	return false
}

func levelForSpan(measures int) Level {
	switch {
	case measures <= 1:
		return LevelMotive
	case measures == 2:
		return LevelSubPhrase
	case measures <= 4:
		return LevelPhrase
	case measures <= 8:
		return LevelPeriod
	default:
		return LevelTheme
	}
}
