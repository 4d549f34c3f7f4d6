package visual

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/emotion"
)

// Recommend returns exactly SchemeCount schemes with descending confidence
// 0.95 - 0.05*i. Candidate shape and animation lists are re-sorted by the
// preference snapshot before indexing; the relationship type selects the
// modular indexing formula so repeats look consistent, contrasts look
// differentiated, and similars partially overlap.
func Recommend(profile emotion.Profile, level analysis.Level, prefs map[string]float64, relType analysis.RelationType) []Scheme {
	palette := PaletteFor(profile)
	shapes := sortByPreference(Shapes, prefs)
	animations := sortByPreference(Animations, prefs)
	elements := elementCount(level)

	schemes := make([]Scheme, 0, SchemeCount)
	for si := 0; si < SchemeCount; si++ {
		scheme := Scheme{
			ID:         schemeID(profile, level, relType, si),
			Layout:     layoutFor(level),
			Confidence: 0.95 - 0.05*float64(si),
		}

		for ei := 0; ei < elements; ei++ {
			scheme.Elements = append(scheme.Elements, Element{
				Type:  shapes[pick(relType, si, ei, len(shapes))],
				Color: palette[pick(relType, si, ei, len(palette))],
				Size:  40 + 10*float64(ei),
				Animation: Animation{
					Type:     animations[pick(relType, si, ei, len(animations))],
					Duration: 1 + 0.5*float64(si%3),
					Easing:   easings[si%len(easings)],
				},
			})
		}

		schemes = append(schemes, scheme)
	}

	return schemes
}

// schemeID derives a name-based UUID from the recommendation inputs, so
// identical calls return identical schemes, IDs included.
func schemeID(profile emotion.Profile, level analysis.Level, relType analysis.RelationType, si int) string {
	seed := fmt.Sprintf("%s/%s/%s/%s/%s/%d",
		profile.Speed, profile.Intensity, profile.Tension, level, relType, si)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

// pick maps scheme and element indices into a candidate list. Each
// relationship type uses its own formula: repeat ignores the element index
// so every element of a scheme matches; contrast strides widely so
// neighboring schemes differ as much as possible; similar shifts by half
// the list so consecutive schemes overlap partially.
func pick(relType analysis.RelationType, si, ei, n int) int {
	switch relType {
	case analysis.RelationRepeat:
		return si % n
	case analysis.RelationContrast:
		return (si*3 + ei*2 + 1) % n
	case analysis.RelationSimilar:
		return (si + ei*(n/2)) % n
	default:
		return (si*2 + ei) % n
	}
}

// sortByPreference stably re-sorts candidates descending by the caller's
// weight for each token. Absent tokens weigh 0, so with no preferences the
// original order is preserved.
func sortByPreference(candidates []string, prefs map[string]float64) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)

	if len(prefs) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return prefs[out[i]] > prefs[out[j]]
	})

	return out
}

func layoutFor(level analysis.Level) string {
	if level == analysis.LevelMotive {
		return "centered"
	}
	return "horizontal"
}
