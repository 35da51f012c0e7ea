package vocab

import "fmt"

// Dimension identifies one of the globally assessed rating axes. The string
// value is the `categorie` key the backend expects on evaluation entries.
type Dimension string

const (
	DimensionInvolvement       Dimension = "IMPLICATION_ACTIVITE"
	DimensionOpenness          Dimension = "OUVERTURE_AUX_AUTRES"
	DimensionProductionQuality Dimension = "QUALITE_DE_SES_PRODUCTIONS"

	// DimensionObservations carries the free-text remark flag; it has no
	// rating table and is emitted with ObservationValue when present.
	DimensionObservations Dimension = "OBSERVATION_SUR_ENSEMBLE_DU_TRAVAIL_ACCOMPLI"
)

// Unrated is the value every dimension reports for a rating of 0.
const Unrated = "NA"

// ObservationValue is the placeholder the backend stores alongside a
// free-text observation entry.
const ObservationValue = "BONNE"

// Competence group names accepted by the backend. These must match the
// service-side enumeration exactly.
const (
	CompetenceIndividuelle = "COMPETENCE_INDIVIDUELLE"
	CompetenceEntreprise   = "COMPETENCE_ENTREPRISE"
	CompetenceTechnique    = "COMPETENCE_TECHNIQUE"
	CompetenceSpecifique   = "COMPETENCE_SPECIFIQUE"
)

// Category keys for the fixed competence groups.
const (
	CategoryAnalysis        = "ANALYSE_SYNTHESE"
	CategoryMethods         = "PROPOSER_METHODES"
	CategoryStakeholders    = "FAIRE_ADHERER"
	CategoryInternational   = "CONTEXTE_INTERNATIONAL"
	CategorySelfEvaluation  = "AUTOEVALUATION"
	CategoryComplexProblems = "IDENTIFIER_PROBLEMES"

	CategoryCompanyAnalysis     = "ANALYSER_FONCTIONNEMENT"
	CategoryProjectApproach     = "ANALYSER_DEMARCHE_PROJET"
	CategoryEnvironmentalPolicy = "POLITIQUE_ENVIRONNEMENTALE"
	CategoryInformationResearch = "RECHERCHER_INFORMATION"

	CategoryPreliminaryDesign = "CONCEPTION_PRELIMINAIRE"
)

// ratingTables maps each rated dimension to its 1..5 value scale.
var ratingTables = map[Dimension][5]string{
	DimensionInvolvement: {
		"PARESSEUX",
		"JUSTE_NECESSAIRE",
		"BONNE",
		"TRES_FORTE",
		"DEPASSE_OBJECTIFS",
	},
	DimensionOpenness: {
		"ISOLE",
		"RENFERME",
		"BONNE",
		"TRES_BONNE",
		"EXCELLENTE",
	},
	DimensionProductionQuality: {
		"MEDIOCRE",
		"ACCEPTABLE",
		"BONNE",
		"TRES_BONNE",
		"TRES_PROFESSIONNELLE",
	},
}

// RatedDimensions lists the dimensions that carry a 1..5 table, in the order
// the backend expects evaluation entries.
func RatedDimensions() []Dimension {
	return []Dimension{
		DimensionInvolvement,
		DimensionOpenness,
		DimensionProductionQuality,
	}
}

// MapRating translates an ordinal rating into the dimension's backend value.
// Rating 0 maps to Unrated for every dimension. Ratings outside {0..5} and
// dimensions without a table are rejected.
func MapRating(dim Dimension, rating int) (string, error) {
	if rating == 0 {
		return Unrated, nil
	}
	table, ok := ratingTables[dim]
	if !ok {
		return "", fmt.Errorf("vocab: dimension %q has no rating table", dim)
	}
	if rating < 1 || rating > 5 {
		return "", fmt.Errorf("vocab: rating %d out of range for %s", rating, dim)
	}
	return table[rating-1], nil
}

// ValidRating reports whether a rating is acceptable at the boundary.
func ValidRating(rating int) bool {
	return rating >= 0 && rating <= 5
}
