package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	testutils "github.com/cadenzahq/cadenza/pkg/utils/test"
)

func structure(id string, ns ...string) analysis.Structure {
	return analysis.Structure{
		ID:    id,
		Level: analysis.LevelPhrase,
		Notes: quarters(ns...),
	}
}

var _ = Describe("DetectRelationships", func() {
	It("classifies identical pitch sequences as repeat", func() {
		rels := analysis.DetectRelationships([]analysis.Structure{
			structure("s1", "C4", "D4", "E4", "C4"),
			structure("s2", "C4", "D4", "E4", "C4"),
		})

		Expect(rels).To(HaveLen(1))
		Expect(rels[0].Type).To(Equal(analysis.RelationRepeat))
		Expect(rels[0].Similarity).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("recognizes transposed repeats", func() {
		rels := analysis.DetectRelationships([]analysis.Structure{
			structure("s1", "C4", "D4", "E4", "C4"),
			structure("s2", "D4", "E4", "F#4", "D4"),
		})

		Expect(rels).To(HaveLen(1))
		Expect(rels[0].Type).To(Equal(analysis.RelationRepeat))
	})

	It("classifies matching contour with partial overlap as similar", func() {
		rels := analysis.DetectRelationships([]analysis.Structure{
			structure("s1", "C4", "D4", "E4", "F4"),
			structure("s2", "C4", "D4", "E4", "G4"),
		})

		Expect(rels).To(HaveLen(1))
		Expect(rels[0].Type).To(Equal(analysis.RelationSimilar))
		Expect(rels[0].Similarity).To(BeNumerically(">=", 0.6))
	})

	It("classifies opposing contour with little in common as contrast", func() {
		a := analysis.Structure{ID: "s1", Notes: notes([]float64{0.25, 0.25, 0.25, 0.25}, "C4", "D4", "E4", "F4")}
		b := analysis.Structure{ID: "s2", Notes: notes([]float64{2, 2, 2, 2}, "F4", "E4", "D4", "C4")}

		rels := analysis.DetectRelationships([]analysis.Structure{a, b})
		Expect(rels).To(HaveLen(1))
		Expect(rels[0].Type).To(Equal(analysis.RelationContrast))
		Expect(rels[0].Similarity).To(BeNumerically("<", 0.4))
	})

	It("falls back to transition for adjacent in-between pairs", func() {
		rels := analysis.DetectRelationships([]analysis.Structure{
			structure("s1", "C4", "D4", "E4", "F4"),
			structure("s2", "G5", "F5", "E5", "D5"),
		})

		Expect(rels).To(HaveLen(1))
		Expect(rels[0].Type).To(Equal(analysis.RelationTransition))
	})

	It("skips pairs outside the comparison window", func() {
		structures := make([]analysis.Structure, 12)
		for i := range structures {
			structures[i] = structure(
				[]string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12"}[i],
				"C4", "D4", "E4", "C4",
			)
		}

		rels := analysis.DetectRelationships(structures)
		for _, r := range rels {
			Expect(r.Description).NotTo(BeEmpty())
		}
		// s1 and s12 are 11 apart, beyond the window, so no relationship
		for _, r := range rels {
			Expect([2]string{r.ID1, r.ID2}).NotTo(Equal([2]string{"s1", "s12"}))
		}
	})

	It("returns identical output for repeated runs", func() {
		s := testutils.BuildScore("det",
			[]string{"C4", "D4", "E4", "F4"}, []string{"G4", "A4"},
			[]string{"C4", "D4", "E4", "F4"}, []string{"B3", "A3"},
			[]string{"C5", "B4", "A4", "G4"}, []string{"F4", "E4"},
		)

		first := analysis.Analyze(s)
		second := analysis.Analyze(s)
		Expect(second).To(Equal(first))
	})
})
