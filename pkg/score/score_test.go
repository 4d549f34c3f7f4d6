package score_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/score"
)

var _ = Describe("Pitch parsing", func() {
	DescribeTable("MIDI",
		func(pitch string, want int) {
			midi, err := score.MIDI(pitch)
			Expect(err).NotTo(HaveOccurred())
			Expect(midi).To(Equal(want))
		},
		Entry("middle C", "C4", 60),
		Entry("A440", "A4", 69),
		Entry("sharp", "F#5", 78),
		Entry("flat", "Bb3", 58),
		Entry("lowest octave", "C-1", 0),
		Entry("top of range", "G9", 127),
	)

	It("rejects malformed pitches", func() {
		for _, p := range []string{"", "C", "H4", "C##4", "4C", "Cx"} {
			_, err := score.MIDI(p)
			Expect(err).To(MatchError(score.ErrInvalidPitch), "pitch %q", p)
		}
	})

	It("rejects pitches outside MIDI range", func() {
		_, err := score.MIDI("A9")
		Expect(err).To(MatchError(score.ErrInvalidPitch))
	})

	It("skips unparseable pitches in a sequence", func() {
		notes := []score.Note{
			{Pitch: "C4", Duration: 1},
			{Pitch: "??", Duration: 1},
			{Pitch: "E4", Duration: 1},
		}
		Expect(score.MIDISequence(notes)).To(Equal([]int{60, 64}))
	})
})

var _ = Describe("Intervals", func() {
	It("returns successive differences", func() {
		Expect(score.Intervals([]int{60, 64, 62})).To(Equal([]int{4, -2}))
	})

	It("is nil for fewer than two pitches", func() {
		Expect(score.Intervals([]int{60})).To(BeNil())
		Expect(score.Intervals(nil)).To(BeNil())
	})
})

var _ = Describe("Score", func() {
	sc := &score.Score{
		Measures: []score.Measure{
			{Number: 1, Notes: []score.Note{{Pitch: "C4", Duration: 1}, {Pitch: "D4", Duration: 1}}},
			{Number: 2, Notes: []score.Note{{Pitch: "E4", Duration: 2}}},
			{Number: 3, Notes: []score.Note{{Pitch: "F4", Duration: 0.5}}},
		},
	}

	Describe("NotesInRange", func() {
		It("collects notes across an inclusive measure range", func() {
			notes := sc.NotesInRange(1, 2)
			Expect(notes).To(HaveLen(3))
			Expect(notes[2].Pitch).To(Equal("E4"))
		})

		It("clamps out-of-range bounds", func() {
			Expect(sc.NotesInRange(0, 99)).To(HaveLen(4))
		})

		It("returns nil for an inverted range", func() {
			Expect(sc.NotesInRange(3, 1)).To(BeNil())
		})
	})

	Describe("aggregates", func() {
		It("computes mean duration", func() {
			Expect(score.MeanDuration(sc.NotesInRange(1, 3))).To(BeNumerically("~", 1.125, 1e-9))
		})

		It("computes mean pitch", func() {
			Expect(score.MeanPitch([]score.Note{{Pitch: "C4"}, {Pitch: "E4"}})).To(BeNumerically("~", 62.0, 1e-9))
		})

		It("is zero for empty input", func() {
			Expect(score.MeanDuration(nil)).To(BeZero())
			Expect(score.MeanPitch(nil)).To(BeZero())
		})
	})
})
