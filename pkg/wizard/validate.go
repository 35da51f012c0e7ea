package wizard

import (
	"github.com/goliatone/go-stageval/pkg/draft"
	"github.com/goliatone/go-stageval/pkg/lookup"
	"github.com/goliatone/go-stageval/pkg/vocab"
)

// ExistencePolicy states what a CIN's catalog status must be for the flow at
// hand. The evaluation flow requires both persons to exist; the person
// creation forms require the opposite.
type ExistencePolicy int

const (
	MustExist ExistencePolicy = iota
	MustNotExist
)

// Identity carries the last known lookup statuses for the two CIN fields.
// Validation consumes these; it never performs lookups itself.
type Identity struct {
	Stagiaire lookup.Status
	Tuteur    lookup.Status
}

// Result is the outcome of validating one step.
type Result struct {
	Valid       bool
	FieldErrors map[string]string
}

func newResult() Result {
	return Result{Valid: true, FieldErrors: map[string]string{}}
}

func (r *Result) reject(field, message string) {
	r.Valid = false
	if _, taken := r.FieldErrors[field]; !taken {
		r.FieldErrors[field] = message
	}
}

// Validate runs the synchronous rules for one step. It is a pure function of
// the draft and the supplied identity statuses.
func Validate(step Step, d draft.Draft, id Identity, policy ExistencePolicy) Result {
	result := newResult()

	switch step {
	case StepPersonal:
		if d.StagiaireCIN == "" {
			result.reject("stagiaireCIN", "Le CIN du stagiaire est requis")
		} else if msg, ok := CheckCIN(id.Stagiaire, policy); !ok {
			result.reject("stagiaireCIN", msg)
		}
		if d.TuteurCIN == "" {
			result.reject("tuteurCIN", "Le CIN du tuteur est requis")
		} else if msg, ok := CheckCIN(id.Tuteur, policy); !ok {
			result.reject("tuteurCIN", msg)
		}
		if d.CompanyName == "" {
			result.reject("companyName", "Le nom de l'entreprise est requis")
		}
		if d.StartDate == "" {
			result.reject("startDate", "La date de début est requise")
		}
		if d.EndDate == "" {
			result.reject("endDate", "La date de fin est requise")
		}
		if d.ProjectTheme == "" {
			result.reject("projectTheme", "Le thème du projet est requis")
		}

	case StepGlobal:
		// Ratings default to 0 (unset) and are accepted; anything outside
		// the scale is rejected rather than silently remapped.
		checkRating(&result, "involvement", d.Global.Involvement)
		checkRating(&result, "openness", d.Global.Openness)
		checkRating(&result, "productionQuality", d.Global.ProductionQuality)

	case StepGeneral:
		checkRating(&result, "overallRating", d.General.OverallRating)
	}

	return result
}

// CheckCIN applies the flow's existence polarity to a lookup status. It
// returns ok=true when the status satisfies the policy. Unresolved inputs
// fail MustExist (the lookup either has not settled or the input is too
// short) and pass MustNotExist. A lookup fault fails both polarities: a
// could-not-ask is never evidence of absence.
func CheckCIN(status lookup.Status, policy ExistencePolicy) (string, bool) {
	switch policy {
	case MustNotExist:
		switch status {
		case lookup.StatusResolved:
			return "Ce CIN existe déjà dans la base de données", false
		case lookup.StatusErrored:
			return "Vérification du CIN impossible, réessayez", false
		default:
			return "", true
		}
	default:
		switch status {
		case lookup.StatusResolved:
			return "", true
		case lookup.StatusErrored:
			return "Vérification du CIN impossible, réessayez", false
		default:
			return "Ce CIN n'existe pas dans la base de données", false
		}
	}
}

func checkRating(result *Result, field string, rating int) {
	if !vocab.ValidRating(rating) {
		result.reject(field, "La note doit être comprise entre 1 et 5")
	}
}
