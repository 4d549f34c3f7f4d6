package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/score"
	testutils "github.com/cadenzahq/cadenza/pkg/utils/test"
)

func expectFullCover(structures []analysis.Structure, total int) {
	Expect(structures).NotTo(BeEmpty())
	Expect(structures[0].StartMeasure).To(Equal(1))
	for i := 1; i < len(structures); i++ {
		Expect(structures[i].StartMeasure).To(Equal(structures[i-1].EndMeasure + 1))
	}
	Expect(structures[len(structures)-1].EndMeasure).To(Equal(total))
}

var _ = Describe("Segment", func() {
	It("returns empty for a nil or empty score", func() {
		Expect(analysis.Segment(nil)).To(BeEmpty())
		Expect(analysis.Segment(&score.Score{})).To(BeEmpty())
	})

	It("splits every four measures when no other boundary fires", func() {
		s := testutils.BuildScore("uniform",
			[]string{"C4", "D4"}, []string{"E4", "F4"},
			[]string{"G4", "A4"}, []string{"B4", "C5"},
			[]string{"C4", "D4"}, []string{"E4", "F4"},
			[]string{"G4", "A4"}, []string{"B4", "C5"},
		)

		structures := analysis.Segment(s)
		Expect(structures).To(HaveLen(2))
		Expect(structures[0].StartMeasure).To(Equal(1))
		Expect(structures[0].EndMeasure).To(Equal(4))
		Expect(structures[1].StartMeasure).To(Equal(5))
		Expect(structures[1].EndMeasure).To(Equal(8))
		Expect(structures[0].Level).To(Equal(analysis.LevelPhrase))
	})

	It("breaks after a cadential long note", func() {
		s := &score.Score{Measures: []score.Measure{
			{Number: 1, Notes: []score.Note{
				{Pitch: "C4", Duration: 1}, {Pitch: "D4", Duration: 1},
				{Pitch: "E4", Duration: 1}, {Pitch: "F4", Duration: 1},
			}},
			{Number: 2, Notes: []score.Note{
				{Pitch: "G4", Duration: 1}, {Pitch: "A4", Duration: 1},
				{Pitch: "B4", Duration: 1}, {Pitch: "C5", Duration: 4},
			}},
			{Number: 3, Notes: []score.Note{{Pitch: "C4", Duration: 1}}},
			{Number: 4, Notes: []score.Note{{Pitch: "D4", Duration: 1}}},
		}}

		structures := analysis.Segment(s)
		Expect(structures).To(HaveLen(2))
		Expect(structures[0].EndMeasure).To(Equal(2))
		expectFullCover(structures, 4)
	})

	It("breaks after an empty measure", func() {
		s := &score.Score{Measures: []score.Measure{
			{Number: 1, Notes: []score.Note{{Pitch: "C4", Duration: 1}}},
			{Number: 2},
			{Number: 3, Notes: []score.Note{{Pitch: "E4", Duration: 1}}},
		}}

		structures := analysis.Segment(s)
		Expect(structures).To(HaveLen(2))
		Expect(structures[0].EndMeasure).To(Equal(2))
		expectFullCover(structures, 3)
	})

	It("covers every measure exactly once", func() {
		s := testutils.BuildScore("cover",
			[]string{"C4"}, []string{"D4"}, []string{"E4"}, []string{"F4"},
			[]string{"G4"}, []string{"A4"}, []string{"B4"},
		)

		structures := analysis.Segment(s)
		expectFullCover(structures, 7)
	})

	It("assigns levels by span", func() {
		s := &score.Score{Measures: []score.Measure{
			{Number: 1, Notes: []score.Note{{Pitch: "C4", Duration: 1}}},
			{Number: 2},
			{Number: 3, Notes: []score.Note{{Pitch: "E4", Duration: 1}}},
		}}

		structures := analysis.Segment(s)
		Expect(structures[0].Level).To(Equal(analysis.LevelSubPhrase))
		Expect(structures[1].Level).To(Equal(analysis.LevelMotive))
	})

	It("derives notes from the covered range", func() {
		s := testutils.BuildScore("notes",
			[]string{"C4", "D4"}, []string{"E4"}, []string{"F4"}, []string{"G4"},
		)

		structures := analysis.Segment(s)
		Expect(structures).To(HaveLen(1))
		Expect(structures[0].Notes).To(HaveLen(5))
	})
})
