// Package visual generates ranked visual scheme recommendations for musical
// structures. Recommendation is a pure function of emotion, structure level,
// relationship type, and the caller's preference snapshot; scheme IDs are
// the only non-deterministic output.
package visual

import (
	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/emotion"
)

// SchemeCount is how many schemes every recommendation returns.
const SchemeCount = 5

// Animation describes one element's motion.
type Animation struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Easing   string  `json:"easing"`
}

// Element is one visual building block of a scheme.
type Element struct {
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	Size      float64   `json:"size"`
	Animation Animation `json:"animation"`
}

// Scheme is a ranked visual recommendation.
type Scheme struct {
	ID         string    `json:"id"`
	Elements   []Element `json:"elements"`
	Layout     string    `json:"layout"`
	Confidence float64   `json:"confidence"`
}

// Shapes is the fixed shape candidate list.
var Shapes = []string{"circle", "square", "triangle", "diamond", "star", "hexagon", "wave"}

// Animations is the fixed animation-kind candidate list.
var Animations = []string{"fade", "pulse", "rotate", "slide", "bounce"}

var easings = []string{"ease-in-out", "linear", "ease-out"}

// Color palettes, one per emotional register. Selection is a pure lookup
// from the emotion profile.
var (
	paletteWarm     = []string{"#FF6B35", "#F7C548", "#FF3864", "#FFA630", "#E4572E"}
	paletteCool     = []string{"#4A90D9", "#7FB7BE", "#B5D6D6", "#6B9AC4", "#97C8EB"}
	palettePurple   = []string{"#5E548E", "#9F86C0", "#BE95C4", "#7251B5", "#4A306D"}
	paletteBalanced = []string{"#4ECDC4", "#FFE66D", "#95E1D3", "#F38181", "#A8D8EA"}
)

// PaletteFor picks the color set for an emotion profile.
func PaletteFor(p emotion.Profile) []string {
	switch {
	case p.Speed == "fast" && p.Intensity == "strong":
		return paletteWarm
	case p.Speed == "slow" && p.Intensity == "weak":
		return paletteCool
	case p.Tension == "tense":
		return palettePurple
	default:
		return paletteBalanced
	}
}

// elementCount depends on structure level: a motive gets a single element,
// anything larger gets three.
func elementCount(level analysis.Level) int {
	if level == analysis.LevelMotive {
		return 1
	}
	return 3
}
