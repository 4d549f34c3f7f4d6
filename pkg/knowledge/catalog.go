package knowledge

// catalog is the built-in rule set. Order matters: search ties and category
// listings follow this insertion order.
var catalog = []TheoryRule{
	// Cadence
	{
		ID:                "cadence-authentic",
		Name:              "Perfect Authentic Cadence",
		Description:       "A V to I progression with both chords in root position and the tonic in the soprano, giving the strongest sense of closure at the end of a phrase or section.",
		Category:          CategoryCadence,
		ApplicablePeriods: []string{"baroque", "classical", "romantic"},
		Confidence:        0.95,
	},
	{
		ID:                "cadence-half",
		Name:              "Half Cadence",
		Description:       "A phrase ending on the dominant chord, leaving the music open and expecting continuation, often at the midpoint of a period.",
		Category:          CategoryCadence,
		ApplicablePeriods: []string{"baroque", "classical", "romantic"},
		Confidence:        0.9,
	},
	{
		ID:                "cadence-deceptive",
		Name:              "Deceptive Cadence",
		Description:       "The dominant resolves to the submediant instead of the tonic, thwarting the expected close and extending the phrase.",
		Category:          CategoryCadence,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "cadence-plagal",
		Name:              "Plagal Cadence",
		Description:       "A IV to I motion, softer than the authentic cadence, associated with hymn endings and a settled, restful quality.",
		Category:          CategoryCadence,
		ApplicablePeriods: []string{"renaissance", "baroque", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "cadence-long-note",
		Name:              "Cadential Arrival on a Long Note",
		Description:       "A note held noticeably longer than its neighbors at a phrase boundary signals a point of rest and often marks the end of a structural unit.",
		Category:          CategoryCadence,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.8,
	},

	// Phrase
	{
		ID:                "phrase-four-bar",
		Name:              "Four-Bar Phrase",
		Description:       "The default phrase length in common-practice music is four measures, and listeners expect boundaries at multiples of four.",
		Category:          CategoryPhrase,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.9,
	},
	{
		ID:                "phrase-period",
		Name:              "Parallel Period",
		Description:       "Two phrases forming antecedent and consequent, opening with the same material but closing with a weak then a strong cadence.",
		Category:          CategoryPhrase,
		ApplicablePeriods: []string{"classical"},
		Confidence:        0.9,
	},
	{
		ID:                "phrase-sentence",
		Name:              "Sentence Structure",
		Description:       "A presentation of a basic idea and its repetition followed by continuation and cadence, commonly in a 2 plus 2 plus 4 measure proportion.",
		Category:          CategoryPhrase,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "phrase-elision",
		Name:              "Phrase Elision",
		Description:       "The final measure of one phrase doubles as the first measure of the next, overlapping the boundary and driving the music forward.",
		Category:          CategoryPhrase,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.75,
	},
	{
		ID:                "phrase-rest-boundary",
		Name:              "Rest as Phrase Boundary",
		Description:       "A measure of silence or a conspicuous rest separates phrases, acting as musical punctuation between structural units.",
		Category:          CategoryPhrase,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.8,
	},

	// Form
	{
		ID:                "form-binary",
		Name:              "Binary Form",
		Description:       "Two complementary sections, often both repeated, where the second departs from and then returns toward the opening material.",
		Category:          CategoryForm,
		ApplicablePeriods: []string{"baroque", "classical"},
		Confidence:        0.9,
	},
	{
		ID:                "form-ternary",
		Name:              "Ternary Form",
		Description:       "A three-part ABA design in which the opening section returns after a contrasting middle, the most direct large-scale use of repetition.",
		Category:          CategoryForm,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.9,
	},
	{
		ID:                "form-rondo",
		Name:              "Rondo Form",
		Description:       "A recurring refrain alternates with contrasting episodes, as in ABACA, so the main theme is heard at least three times.",
		Category:          CategoryForm,
		ApplicablePeriods: []string{"classical"},
		Confidence:        0.85,
	},
	{
		ID:                "form-sonata",
		Name:              "Sonata Form",
		Description:       "Exposition, development, and recapitulation organized around tonal departure and return, with two theme groups in contrasting keys.",
		Category:          CategoryForm,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "form-through-composed",
		Name:              "Through-Composed Form",
		Description:       "Continuously new material with no large-scale repetition, common in dramatic vocal music that follows a text.",
		Category:          CategoryForm,
		ApplicablePeriods: []string{"romantic", "modern"},
		Confidence:        0.8,
	},

	// Tonality
	{
		ID:                "tonality-major-bright",
		Name:              "Major Mode Brightness",
		Description:       "Music centered on a major scale tends to be perceived as bright, stable, and positive in character.",
		Category:          CategoryTonality,
		ApplicablePeriods: []string{"baroque", "classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "tonality-minor-dark",
		Name:              "Minor Mode Darkness",
		Description:       "The minor mode, with its lowered third degree, is conventionally associated with sadness, seriousness, or tension.",
		Category:          CategoryTonality,
		ApplicablePeriods: []string{"baroque", "classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "tonality-modulation",
		Name:              "Modulation to the Dominant",
		Description:       "Moving the tonal center to the dominant key raises large-scale tension that resolves when the home key returns.",
		Category:          CategoryTonality,
		ApplicablePeriods: []string{"baroque", "classical"},
		Confidence:        0.8,
	},
	{
		ID:                "tonality-chromaticism",
		Name:              "Chromatic Saturation",
		Description:       "Dense chromatic motion outside the prevailing key weakens tonal gravity and heightens instability and expressive tension.",
		Category:          CategoryTonality,
		ApplicablePeriods: []string{"romantic", "modern"},
		Confidence:        0.75,
	},
	{
		ID:                "tonality-pedal-point",
		Name:              "Pedal Point",
		Description:       "A sustained bass tone beneath changing harmonies anchors the tonality while building tension against the moving upper voices.",
		Category:          CategoryTonality,
		ApplicablePeriods: []string{"baroque", "romantic"},
		Confidence:        0.8,
	},

	// Texture
	{
		ID:                "texture-monophony",
		Name:              "Monophonic Texture",
		Description:       "A single unaccompanied melodic line, the sparsest texture, focusing all attention on contour and rhythm.",
		Category:          CategoryTexture,
		ApplicablePeriods: []string{"medieval", "modern"},
		Confidence:        0.85,
	},
	{
		ID:                "texture-homophony",
		Name:              "Homophonic Texture",
		Description:       "A dominant melody supported by chordal accompaniment, the default texture of common-practice music.",
		Category:          CategoryTexture,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "texture-polyphony",
		Name:              "Polyphonic Texture",
		Description:       "Multiple independent melodic lines of equal importance woven together, as in fugue and other imitative writing.",
		Category:          CategoryTexture,
		ApplicablePeriods: []string{"renaissance", "baroque"},
		Confidence:        0.85,
	},
	{
		ID:                "texture-density-energy",
		Name:              "Note Density and Energy",
		Description:       "A high count of notes per measure produces an energetic, busy surface, while sparse writing feels calm or static.",
		Category:          CategoryTexture,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.8,
	},
	{
		ID:                "texture-register-contrast",
		Name:              "Register Contrast",
		Description:       "Shifting material between high and low registers differentiates sections and can substitute for thematic contrast.",
		Category:          CategoryTexture,
		ApplicablePeriods: []string{"classical", "romantic", "modern"},
		Confidence:        0.75,
	},

	// Rhythm
	{
		ID:                "rhythm-fast-excited",
		Name:              "Fast Note Values and Excitement",
		Description:       "Predominantly short note durations create a fast surface rhythm perceived as lively, urgent, or excited.",
		Category:          CategoryRhythm,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.85,
	},
	{
		ID:                "rhythm-slow-calm",
		Name:              "Long Note Values and Calm",
		Description:       "Predominantly long durations slow the surface rhythm, producing a calm, solemn, or spacious character.",
		Category:          CategoryRhythm,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.85,
	},
	{
		ID:                "rhythm-ostinato",
		Name:              "Rhythmic Ostinato",
		Description:       "A short rhythmic figure repeated persistently builds momentum and unifies a passage through sheer insistence.",
		Category:          CategoryRhythm,
		ApplicablePeriods: []string{"baroque", "modern"},
		Confidence:        0.8,
	},
	{
		ID:                "rhythm-syncopation",
		Name:              "Syncopation",
		Description:       "Accents displaced off the strong beats create rhythmic tension and a sense of propulsion against the meter.",
		Category:          CategoryRhythm,
		ApplicablePeriods: []string{"romantic", "modern"},
		Confidence:        0.8,
	},
	{
		ID:                "rhythm-uniformity",
		Name:              "Durational Uniformity",
		Description:       "When nearly all notes share one duration the rhythm reads as mechanical or flowing, with little internal articulation.",
		Category:          CategoryRhythm,
		ApplicablePeriods: []string{"baroque", "modern"},
		Confidence:        0.7,
	},

	// Melody
	{
		ID:                "melody-ascending-energy",
		Name:              "Ascending Contour and Rising Energy",
		Description:       "A melodic line that climbs in pitch is heard as gaining energy, brightness, and intensity.",
		Category:          CategoryMelody,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.85,
	},
	{
		ID:                "melody-descending-release",
		Name:              "Descending Contour and Release",
		Description:       "A falling melodic line releases tension and suggests relaxation, resignation, or closure.",
		Category:          CategoryMelody,
		ApplicablePeriods: []string{"baroque", "classical", "romantic", "modern"},
		Confidence:        0.85,
	},
	{
		ID:                "melody-arch",
		Name:              "Arch Contour",
		Description:       "A melody that rises to a single peak and then descends forms an arch, the most common large-scale melodic shape.",
		Category:          CategoryMelody,
		ApplicablePeriods: []string{"renaissance", "classical", "romantic"},
		Confidence:        0.8,
	},
	{
		ID:                "melody-motivic-repetition",
		Name:              "Motivic Repetition",
		Description:       "A short melodic cell repeated or sequenced through a passage binds it together and marks it as a coherent unit.",
		Category:          CategoryMelody,
		ApplicablePeriods: []string{"baroque", "classical", "romantic"},
		Confidence:        0.85,
	},
	{
		ID:                "melody-leap-tension",
		Name:              "Large Leaps and Tension",
		Description:       "Wide melodic intervals are more tense and expressive than stepwise motion and usually resolve by step in the opposite direction.",
		Category:          CategoryMelody,
		ApplicablePeriods: []string{"classical", "romantic"},
		Confidence:        0.8,
	},
}

// Catalog returns a copy of the built-in rule list in catalog order.
func Catalog() []TheoryRule {
	out := make([]TheoryRule, len(catalog))
	copy(out, catalog)
	return out
}
