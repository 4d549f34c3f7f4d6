package form

import "github.com/cadenzahq/cadenza/pkg/analysis"

// Form labels.
const (
	FormBinary          = "Binary Form (AB)"
	FormTernary         = "Ternary Form (ABA)"
	FormRondo           = "Rondo Form (ABACA)"
	FormSonata          = "Sonata Form"
	FormThroughComposed = "Through-composed"
)

// IdentifyForm infers the overall form from relationship counts. This is a
// priority-ordered decision list, first match wins, with a structure-count
// fallback when no rule fires.
func IdentifyForm(structures []analysis.Structure, relationships []analysis.Relationship) string {
	n := len(structures)

	var repeats, contrasts int
	for _, rel := range relationships {
		switch rel.Type {
		case analysis.RelationRepeat:
			repeats++
		case analysis.RelationContrast:
			contrasts++
		}
	}

	switch {
	case repeats >= 2 && n >= 3 && firstLastRepeat(structures, relationships):
		return FormTernary
	case repeats >= 3 && n >= 5:
		return FormRondo
	case n <= 4 && contrasts >= 1:
		return FormBinary
	case n >= 8 && repeats >= 2 && contrasts >= 2:
		return FormSonata
	}

	switch {
	case n <= 2:
		return FormBinary
	case n <= 4:
		return FormTernary
	case n <= 6:
		return FormRondo
	default:
		return FormThroughComposed
	}
}

// firstLastRepeat reports whether the first and last structures are related
// by a repeat, in either direction.
func firstLastRepeat(structures []analysis.Structure, relationships []analysis.Relationship) bool {
	if len(structures) < 2 {
		return false
	}
	first := structures[0].ID
	last := structures[len(structures)-1].ID

	for _, rel := range relationships {
		if rel.Type != analysis.RelationRepeat {
			continue
		}
		if (rel.ID1 == first && rel.ID2 == last) || (rel.ID1 == last && rel.ID2 == first) {
			return true
		}
	}
	return false
}
