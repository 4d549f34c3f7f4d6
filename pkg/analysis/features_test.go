package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/score"
)

func notes(durations []float64, pitches ...string) []score.Note {
	out := make([]score.Note, len(pitches))
	for i, p := range pitches {
		d := 1.0
		if i < len(durations) {
			d = durations[i]
		}
		out[i] = score.Note{Pitch: p, Duration: d}
	}
	return out
}

func quarters(pitches ...string) []score.Note {
	return notes(nil, pitches...)
}

var _ = Describe("Contour", func() {
	It("detects ascending lines", func() {
		Expect(analysis.Contour(quarters("C4", "D4", "E4", "F4"))).To(Equal(analysis.ContourAscending))
	})

	It("detects descending lines", func() {
		Expect(analysis.Contour(quarters("F4", "E4", "D4", "C4"))).To(Equal(analysis.ContourDescending))
	})

	It("reads balanced motion as wave", func() {
		Expect(analysis.Contour(quarters("C4", "E4", "C4"))).To(Equal(analysis.ContourWave))
	})

	It("reads too-short input as wave", func() {
		Expect(analysis.Contour(quarters("C4"))).To(Equal(analysis.ContourWave))
		Expect(analysis.Contour(nil)).To(Equal(analysis.ContourWave))
	})
})

var _ = Describe("TempoBucket", func() {
	It("classifies by mean duration", func() {
		fast := notes([]float64{0.25, 0.25}, "C4", "D4")
		slow := notes([]float64{2, 2}, "C4", "D4")
		moderate := quarters("C4", "D4")

		Expect(analysis.TempoBucket(fast)).To(Equal(analysis.TempoFast))
		Expect(analysis.TempoBucket(slow)).To(Equal(analysis.TempoSlow))
		Expect(analysis.TempoBucket(moderate)).To(Equal(analysis.TempoModerate))
		Expect(analysis.TempoBucket(nil)).To(Equal(analysis.TempoModerate))
	})
})

var _ = Describe("SelfRepetitive", func() {
	It("finds a recurring two-note pattern", func() {
		Expect(analysis.SelfRepetitive(quarters("C4", "D4", "C4", "D4"))).To(BeTrue())
	})

	It("rejects a non-repeating line", func() {
		Expect(analysis.SelfRepetitive(quarters("C4", "D4", "E4", "F4"))).To(BeFalse())
		Expect(analysis.SelfRepetitive(quarters("C4"))).To(BeFalse())
	})
})

var _ = Describe("Describe", func() {
	It("names tempo, contour, and repetition", func() {
		s := &analysis.Structure{Notes: quarters("C4", "D4", "C4", "D4")}
		desc := analysis.Describe(s)
		Expect(desc).To(ContainSubstring("moderate tempo"))
		Expect(desc).To(ContainSubstring("melodic contour"))
		Expect(desc).To(ContainSubstring("repeating motif"))
	})
})
