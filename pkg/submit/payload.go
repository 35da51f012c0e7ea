package submit

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-stageval/pkg/backend"
	"github.com/goliatone/go-stageval/pkg/draft"
	"github.com/goliatone/go-stageval/pkg/vocab"
)

// Evaluations maps the global assessment ratings into backend evaluation
// entries. Ratings outside {0..5} are rejected here, before any network call
// happens. A non-empty observation adds a flag entry with the backend's
// placeholder value; the text itself has no slot on the wire.
func Evaluations(d draft.Draft) ([]backend.Evaluation, error) {
	ratings := map[vocab.Dimension]int{
		vocab.DimensionInvolvement:       d.Global.Involvement,
		vocab.DimensionOpenness:          d.Global.Openness,
		vocab.DimensionProductionQuality: d.Global.ProductionQuality,
	}

	out := make([]backend.Evaluation, 0, 4)
	for _, dim := range vocab.RatedDimensions() {
		value, err := vocab.MapRating(dim, ratings[dim])
		if err != nil {
			return nil, fmt.Errorf("map global assessment: %w", err)
		}
		out = append(out, backend.Evaluation{Categorie: string(dim), Valeur: value})
	}

	if strings.TrimSpace(d.Global.Observations) != "" {
		out = append(out, backend.Evaluation{
			Categorie: string(vocab.DimensionObservations),
			Valeur:    vocab.ObservationValue,
		})
	}
	return out, nil
}

// Competences assembles the competence groups: the individual group always,
// company and technical groups when their sections are present, and one
// specific group when any tutor-defined row carries a name. The typed-in
// names become the category keys of the specific group verbatim.
func Competences(d draft.Draft) []backend.Competence {
	out := []backend.Competence{{
		Intitule: vocab.CompetenceIndividuelle,
		Note:     draft.GradeValue(d.Individual.Grade),
		Categories: []backend.Category{
			{Intitule: vocab.CategoryAnalysis, Valeur: string(d.Individual.Analysis)},
			{Intitule: vocab.CategoryMethods, Valeur: string(d.Individual.Methods)},
			{Intitule: vocab.CategoryStakeholders, Valeur: string(d.Individual.Stakeholders)},
			{Intitule: vocab.CategoryInternational, Valeur: string(d.Individual.International)},
			{Intitule: vocab.CategorySelfEvaluation, Valeur: string(d.Individual.SelfEvaluation)},
			{Intitule: vocab.CategoryComplexProblems, Valeur: string(d.Individual.ComplexProblems)},
		},
	}}

	if axes := d.Company.Company; axes != nil {
		out = append(out, backend.Competence{
			Intitule: vocab.CompetenceEntreprise,
			Note:     draft.GradeValue(d.Company.CompanyGrade),
			Categories: []backend.Category{
				{Intitule: vocab.CategoryCompanyAnalysis, Valeur: string(axes.CompanyAnalysis)},
				{Intitule: vocab.CategoryProjectApproach, Valeur: string(axes.ProjectApproach)},
				{Intitule: vocab.CategoryEnvironmentalPolicy, Valeur: string(axes.EnvironmentalPolicy)},
				{Intitule: vocab.CategoryInformationResearch, Valeur: string(axes.InformationResearch)},
			},
		})
	}

	if axes := d.Company.Technical; axes != nil {
		out = append(out, backend.Competence{
			Intitule: vocab.CompetenceTechnique,
			Note:     draft.GradeValue(d.Company.TechnicalGrade),
			Categories: []backend.Category{
				{Intitule: vocab.CategoryPreliminaryDesign, Valeur: string(axes.PreliminaryDesign)},
			},
		})
	}

	var specific []backend.Category
	for _, row := range d.Specific {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		level := row.Level
		if !level.Valid() || level == "" {
			level = draft.LevelDebutant
		}
		specific = append(specific, backend.Category{Intitule: name, Valeur: string(level)})
	}
	if len(specific) > 0 {
		out = append(out, backend.Competence{
			Intitule:   vocab.CompetenceSpecifique,
			Note:       0,
			Categories: specific,
		})
	}

	return out
}
