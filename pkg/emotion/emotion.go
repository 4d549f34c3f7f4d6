// Package emotion derives emotion tags and confidence values for musical
// structures. Everything here is rule-based: the embedding model only ever
// refines confidence, so emotion output is available even when no encoder
// loads.
package emotion

import (
	"math"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/score"
)

// Emotion tags assigned to structures.
const (
	EmotionHappy    = "happy"
	EmotionSad      = "sad"
	EmotionExcited  = "excited"
	EmotionPeaceful = "peaceful"
	EmotionTense    = "tense"
)

// roundRobin is the positional default when no threshold rule fires.
var roundRobin = []string{EmotionHappy, EmotionPeaceful, EmotionSad, EmotionExcited, EmotionTense}

// Recognition is one structure's recognized emotion.
type Recognition struct {
	StructureID string   `json:"structure_id"`
	Primary     string   `json:"primary"`
	Confidence  float64  `json:"confidence"`
	Features    []string `json:"features"`
}

// AudioFeatures are optional decoded audio summaries supplied by the caller.
// Extraction is out of scope; zero values are valid.
type AudioFeatures struct {
	Tempo           float64 `json:"tempo"`
	Density         float64 `json:"density"`
	HarmonicTension float64 `json:"harmonic_tension"`
	Tonality        string  `json:"tonality"`
}

// Profile is the rule-based overall emotion triple.
type Profile struct {
	Speed     string `json:"speed"`
	Intensity string `json:"intensity"`
	Tension   string `json:"tension"`
}

// featureTags are the fixed descriptive tags reported per emotion.
var featureTags = map[string][]string{
	EmotionHappy:    {"major tonality", "bright timbre", "regular rhythm"},
	EmotionSad:      {"minor tonality", "dark timbre", "slow movement"},
	EmotionExcited:  {"high energy", "fast rhythm", "wide range"},
	EmotionPeaceful: {"sparse texture", "high register", "gentle motion"},
	EmotionTense:    {"large intervals", "dissonant motion", "unstable contour"},
}

// structureScalars derives the three scalar features driving recognition.
//
// Energy is note density relative to measure span, capped at 1. Brightness
// maps mean MIDI pitch linearly from 48..84 semitones onto [0,1], clamped.
// Tension is mean absolute melodic interval normalized by an octave, capped
// at 1.
func structureScalars(s *analysis.Structure) (energy, brightness, tension float64) {
	span := s.EndMeasure - s.StartMeasure + 1
	if span < 1 {
		span = 1
	}
	energy = float64(len(s.Notes)) / float64(span) / 4
	if energy > 1 {
		energy = 1
	}

	mean := score.MeanPitch(s.Notes)
	brightness = (mean - 48) / 36
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}

	intervals := score.Intervals(score.MIDISequence(s.Notes))
	if len(intervals) > 0 {
		var sum float64
		for _, iv := range intervals {
			sum += math.Abs(float64(iv))
		}
		tension = sum / float64(len(intervals)) / 12
		if tension > 1 {
			tension = 1
		}
	}

	return energy, brightness, tension
}

// RecognizeEmotions assigns exactly one emotion per structure via ordered
// threshold rules. Audio features, when present, nudge the energy scalar.
func RecognizeEmotions(structures []analysis.Structure, audio *AudioFeatures) []Recognition {
	out := make([]Recognition, 0, len(structures))

	for i := range structures {
		s := &structures[i]
		energy, brightness, tension := structureScalars(s)
		if audio != nil && audio.Density > 0 {
			energy = (energy + math.Min(audio.Density, 1)) / 2
		}

		primary, confidence := classify(energy, brightness, tension, i)

		out = append(out, Recognition{
			StructureID: s.ID,
			Primary:     primary,
			Confidence:  confidence,
			Features:    featureTags[primary],
		})
	}

	return out
}

// classify is the ordered decision list. First match wins; the positional
// round robin is the final default.
func classify(energy, brightness, tension float64, position int) (string, float64) {
	switch {
	case energy > 0.7 && brightness > 0.6:
		return EmotionExcited, 0.85
	case energy > 0.5 && brightness > 0.5:
		return EmotionHappy, 0.8
	case energy < 0.4 && brightness < 0.4:
		return EmotionSad, 0.75
	case energy < 0.4 && brightness > 0.6:
		return EmotionPeaceful, 0.75
	case tension > 0.5:
		return EmotionTense, 0.8
	default:
		return roundRobin[position%len(roundRobin)], 0.7
	}
}

// InferEmotion maps aggregate features to a speed, intensity, and tension
// triple using the same ordered-threshold style. No embedding dependency.
func InferEmotion(features AudioFeatures) Profile {
	var p Profile

	switch {
	case features.Tempo >= 140:
		p.Speed = "fast"
	case features.Tempo > 0 && features.Tempo <= 80:
		p.Speed = "slow"
	default:
		p.Speed = "moderate"
	}

	switch {
	case features.Density > 0.7:
		p.Intensity = "strong"
	case features.Density < 0.3:
		p.Intensity = "weak"
	default:
		p.Intensity = "moderate"
	}

	switch {
	case features.HarmonicTension > 0.6:
		p.Tension = "tense"
	case features.HarmonicTension < 0.2:
		p.Tension = "relaxed"
	default:
		p.Tension = "balanced"
	}

	return p
}
