package submit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-stageval/pkg/backend"
	"github.com/goliatone/go-stageval/pkg/draft"
	"github.com/goliatone/go-stageval/pkg/submit"
)

func TestEvaluationsAllUnset(t *testing.T) {
	got, err := submit.Evaluations(draft.New())
	if err != nil {
		t.Fatalf("evaluations: %v", err)
	}
	want := []backend.Evaluation{
		{Categorie: "IMPLICATION_ACTIVITE", Valeur: "NA"},
		{Categorie: "OUVERTURE_AUX_AUTRES", Valeur: "NA"},
		{Categorie: "QUALITE_DE_SES_PRODUCTIONS", Valeur: "NA"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("evaluations (-want +got):\n%s", diff)
	}
}

func TestEvaluationsMapsRatings(t *testing.T) {
	d := draft.New()
	d.Global.Involvement = 4
	d.Global.Openness = 5
	d.Global.ProductionQuality = 1
	d.Global.Observations = "kept the demo environment alive all summer"

	got, err := submit.Evaluations(d)
	if err != nil {
		t.Fatalf("evaluations: %v", err)
	}
	want := []backend.Evaluation{
		{Categorie: "IMPLICATION_ACTIVITE", Valeur: "TRES_FORTE"},
		{Categorie: "OUVERTURE_AUX_AUTRES", Valeur: "EXCELLENTE"},
		{Categorie: "QUALITE_DE_SES_PRODUCTIONS", Valeur: "MEDIOCRE"},
		{Categorie: "OBSERVATION_SUR_ENSEMBLE_DU_TRAVAIL_ACCOMPLI", Valeur: "BONNE"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("evaluations (-want +got):\n%s", diff)
	}
}

func TestEvaluationsRejectsOutOfRangeRating(t *testing.T) {
	d := draft.New()
	d.Global.Involvement = 7
	if _, err := submit.Evaluations(d); err == nil {
		t.Fatal("expected error for out-of-range rating")
	}
}

func TestCompetencesFixedGroups(t *testing.T) {
	d := draft.New()
	d.Individual.Analysis = draft.LevelAutonome
	d.Individual.Grade = "14"
	d.Company.CompanyGrade = "12"
	d.Company.TechnicalGrade = "16"

	groups := submit.Competences(d)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want individual+company+technical", len(groups))
	}

	individual := groups[0]
	if individual.Intitule != "COMPETENCE_INDIVIDUELLE" || individual.Note != 14 {
		t.Fatalf("individual group = %+v", individual)
	}
	if len(individual.Categories) != 6 {
		t.Fatalf("individual categories = %d, want 6", len(individual.Categories))
	}
	if individual.Categories[0].Intitule != "ANALYSE_SYNTHESE" || individual.Categories[0].Valeur != "AUTONOME" {
		t.Fatalf("analysis category = %+v", individual.Categories[0])
	}

	if groups[1].Intitule != "COMPETENCE_ENTREPRISE" || groups[1].Note != 12 {
		t.Fatalf("company group = %+v", groups[1])
	}
	if groups[2].Intitule != "COMPETENCE_TECHNIQUE" || groups[2].Note != 16 {
		t.Fatalf("technical group = %+v", groups[2])
	}
	if len(groups[2].Categories) != 1 || groups[2].Categories[0].Intitule != "CONCEPTION_PRELIMINAIRE" {
		t.Fatalf("technical categories = %+v", groups[2].Categories)
	}
}

func TestCompetencesOmitsAbsentSections(t *testing.T) {
	d := draft.New()
	d.Company.Company = nil
	d.Company.Technical = nil

	groups := submit.Competences(d)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want only the individual group", len(groups))
	}
}

func TestCompetencesPacksNamedSpecificRows(t *testing.T) {
	d := draft.New()
	d.Specific[0] = draft.SpecificCompetency{Name: "Docker", Level: draft.LevelAutonome}
	d.Specific[2] = draft.SpecificCompetency{Name: "  CI/CD  ", Level: ""}

	groups := submit.Competences(d)
	last := groups[len(groups)-1]
	if last.Intitule != "COMPETENCE_SPECIFIQUE" || last.Note != 0 {
		t.Fatalf("specific group = %+v", last)
	}
	want := []backend.Category{
		{Intitule: "Docker", Valeur: "AUTONOME"},
		{Intitule: "CI/CD", Valeur: "DEBUTANT"},
	}
	if diff := cmp.Diff(want, last.Categories); diff != "" {
		t.Fatalf("specific categories (-want +got):\n%s", diff)
	}
}

func TestCompetencesNoSpecificGroupWhenAllRowsEmpty(t *testing.T) {
	groups := submit.Competences(draft.New())
	for _, g := range groups {
		if g.Intitule == "COMPETENCE_SPECIFIQUE" {
			t.Fatal("empty specific rows must not produce a group")
		}
	}
}
