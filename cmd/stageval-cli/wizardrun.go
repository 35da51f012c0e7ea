package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/goliatone/go-stageval/pkg/draft"
	"github.com/goliatone/go-stageval/pkg/lookup"
	"github.com/goliatone/go-stageval/pkg/submit"
	"github.com/goliatone/go-stageval/pkg/wizard"
	"go.uber.org/zap"
)

// session drives one evaluation wizard run over a prompt driver.
type session struct {
	driver     PromptDriver
	store      *draft.Store
	controller *wizard.Controller
	stagiaires *lookup.Resolver
	tuteurs    *lookup.Resolver
	log        *zap.Logger
}

const (
	navContinue = "Continuer"
	navBack     = "Retour"
	navQuit     = "Quitter"
)

func (s *session) run(ctx context.Context) error {
	for s.controller.Phase() != wizard.PhaseDone {
		step := s.controller.Step()
		if err := s.page(ctx, step); err != nil {
			return err
		}

		choice, err := s.navigate(ctx, step)
		if err != nil {
			return err
		}
		switch choice {
		case navQuit:
			return ErrAborted
		case navBack:
			s.controller.Previous()
			continue
		}

		if int(step) == wizard.StepCount-1 {
			if result := s.controller.Validate(); !result.Valid {
				s.showFieldErrors(ctx, result)
				continue
			}
			if err := s.confirm(ctx); err != nil {
				if errors.Is(err, ErrAborted) {
					return err
				}
				// Submission failed: the draft is preserved, loop back to
				// the final step so the user can retry or step back.
				s.log.Warn("submission attempt failed", zap.Error(err))
				s.driver.Info(ctx, fmt.Sprintf("Échec de la soumission: %v", err))
				continue
			}
			s.driver.Info(ctx, "Évaluation soumise avec succès.")
			return nil
		}

		if result := s.controller.Next(); !result.Valid {
			s.showFieldErrors(ctx, result)
		}
	}
	return nil
}

func (s *session) navigate(ctx context.Context, step wizard.Step) (string, error) {
	options := []string{navContinue, navQuit}
	if step > 0 {
		options = []string{navContinue, navBack, navQuit}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Navigation", Options: options})
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

func (s *session) confirm(ctx context.Context) error {
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Soumettre l'évaluation ?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	err = s.controller.Confirm(ctx)
	var notFound *submit.IdentityNotFoundError
	if errors.As(err, &notFound) {
		s.driver.Info(ctx, fmt.Sprintf("%s introuvable: %s", notFound.Role, notFound.CIN))
	}
	return err
}

func (s *session) showFieldErrors(ctx context.Context, result wizard.Result) {
	fields := make([]string, 0, len(result.FieldErrors))
	for field := range result.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		s.driver.Info(ctx, fmt.Sprintf("  %s: %s", field, result.FieldErrors[field]))
	}
}

func (s *session) page(ctx context.Context, step wizard.Step) error {
	switch step {
	case wizard.StepPersonal:
		return s.promptPersonal(ctx)
	case wizard.StepGlobal:
		return s.promptGlobal(ctx)
	case wizard.StepIndividual:
		return s.promptIndividual(ctx)
	case wizard.StepCompany:
		return s.promptCompany(ctx)
	case wizard.StepSpecific:
		return s.promptSpecific(ctx)
	case wizard.StepGeneral:
		return s.promptGeneral(ctx)
	}
	return nil
}

func (s *session) promptPersonal(ctx context.Context) error {
	d := s.store.Draft()

	cin, err := s.driver.Input(ctx, InputConfig{
		Message: "CIN du stagiaire",
		Default: d.StagiaireCIN,
		Help:    "Identifiant national, 3 caractères minimum",
	})
	if err != nil {
		return err
	}
	stagiaire := s.stagiaires.Resolve(ctx, cin)
	s.announceLookup(ctx, "Stagiaire", stagiaire)

	tuteurCIN, err := s.driver.Input(ctx, InputConfig{
		Message: "CIN du tuteur",
		Default: d.TuteurCIN,
	})
	if err != nil {
		return err
	}
	tuteur := s.tuteurs.Resolve(ctx, tuteurCIN)
	s.announceLookup(ctx, "Tuteur", tuteur)

	company, err := s.driver.Input(ctx, InputConfig{Message: "Entreprise", Default: d.CompanyName})
	if err != nil {
		return err
	}
	start, err := s.driver.Input(ctx, InputConfig{
		Message: "Date de début (AAAA-MM-JJ)",
		Default: d.StartDate,
	})
	if err != nil {
		return err
	}
	end, err := s.driver.Input(ctx, InputConfig{
		Message: "Date de fin (AAAA-MM-JJ)",
		Default: d.EndDate,
	})
	if err != nil {
		return err
	}
	theme, err := s.driver.Input(ctx, InputConfig{Message: "Thème du projet", Default: d.ProjectTheme})
	if err != nil {
		return err
	}
	objectives, err := s.driver.Input(ctx, InputConfig{Message: "Objectifs", Default: d.Objectives})
	if err != nil {
		return err
	}

	s.store.Update(func(d *draft.Draft) {
		d.StagiaireCIN = cin
		d.TuteurCIN = tuteurCIN
		d.CompanyName = company
		d.StartDate = start
		d.EndDate = end
		d.ProjectTheme = theme
		d.Objectives = objectives
		if stagiaire.Status == lookup.StatusResolved {
			d.StagiaireID = stagiaire.ID
			d.StudentName = stagiaire.DisplayName
		} else {
			d.StagiaireID = 0
			d.StudentName = ""
		}
		if tuteur.Status == lookup.StatusResolved {
			d.TuteurID = tuteur.ID
			d.TutorName = tuteur.DisplayName
		} else {
			d.TuteurID = 0
			d.TutorName = ""
		}
	})
	return nil
}

func (s *session) announceLookup(ctx context.Context, role string, result lookup.Result) {
	switch result.Status {
	case lookup.StatusResolved:
		s.driver.Info(ctx, fmt.Sprintf("%s: %s", role, result.DisplayName))
	case lookup.StatusNotFound:
		s.driver.Info(ctx, fmt.Sprintf("%s introuvable pour ce CIN", role))
	case lookup.StatusErrored:
		s.driver.Info(ctx, fmt.Sprintf("%s: vérification impossible (%v)", role, result.Err))
	}
}

func (s *session) promptGlobal(ctx context.Context) error {
	d := s.store.Draft()

	involvement, err := s.promptRating(ctx, "Implication dans l'activité", d.Global.Involvement)
	if err != nil {
		return err
	}
	openness, err := s.promptRating(ctx, "Ouverture aux autres", d.Global.Openness)
	if err != nil {
		return err
	}
	quality, err := s.promptRating(ctx, "Qualité des productions", d.Global.ProductionQuality)
	if err != nil {
		return err
	}
	observations, err := s.driver.Input(ctx, InputConfig{
		Message: "Observations (optionnel)",
		Default: d.Global.Observations,
	})
	if err != nil {
		return err
	}

	s.store.Update(func(d *draft.Draft) {
		d.Global.Involvement = involvement
		d.Global.Openness = openness
		d.Global.ProductionQuality = quality
		d.Global.Observations = observations
	})
	return nil
}

func (s *session) promptIndividual(ctx context.Context) error {
	d := s.store.Draft()
	axes := []struct {
		label string
		value *draft.CompetencyLevel
	}{
		{"Analyse et synthèse", &d.Individual.Analysis},
		{"Proposer des méthodes", &d.Individual.Methods},
		{"Faire adhérer les acteurs", &d.Individual.Stakeholders},
		{"Contexte international", &d.Individual.International},
		{"Auto-évaluation", &d.Individual.SelfEvaluation},
		{"Identifier des problèmes complexes", &d.Individual.ComplexProblems},
	}
	for _, axis := range axes {
		level, err := s.promptLevel(ctx, axis.label, *axis.value)
		if err != nil {
			return err
		}
		*axis.value = level
	}
	grade, err := s.promptGrade(ctx, "Note des compétences individuelles (0-20)", d.Individual.Grade)
	if err != nil {
		return err
	}

	s.store.Update(func(out *draft.Draft) {
		out.Individual = d.Individual
		out.Individual.Grade = grade
	})
	return nil
}

func (s *session) promptCompany(ctx context.Context) error {
	d := s.store.Draft()
	if d.Company.Company != nil {
		axes := []struct {
			label string
			value *draft.CompetencyLevel
		}{
			{"Analyser le fonctionnement de l'entreprise", &d.Company.Company.CompanyAnalysis},
			{"Analyser la démarche projet", &d.Company.Company.ProjectApproach},
			{"Politique environnementale", &d.Company.Company.EnvironmentalPolicy},
			{"Rechercher l'information", &d.Company.Company.InformationResearch},
		}
		for _, axis := range axes {
			level, err := s.promptLevel(ctx, axis.label, *axis.value)
			if err != nil {
				return err
			}
			*axis.value = level
		}
	}
	companyGrade, err := s.promptGrade(ctx, "Note entreprise (0-20)", d.Company.CompanyGrade)
	if err != nil {
		return err
	}

	if d.Company.Technical != nil {
		level, err := s.promptLevel(ctx, "Conception préliminaire", d.Company.Technical.PreliminaryDesign)
		if err != nil {
			return err
		}
		d.Company.Technical.PreliminaryDesign = level
	}
	technicalGrade, err := s.promptGrade(ctx, "Note technique (0-20)", d.Company.TechnicalGrade)
	if err != nil {
		return err
	}

	s.store.Update(func(out *draft.Draft) {
		out.Company = d.Company
		out.Company.CompanyGrade = companyGrade
		out.Company.TechnicalGrade = technicalGrade
	})
	return nil
}

func (s *session) promptSpecific(ctx context.Context) error {
	d := s.store.Draft()
	for i := range d.Specific {
		name, err := s.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Compétence spécifique %d (vide pour ignorer)", i+1),
			Default: d.Specific[i].Name,
		})
		if err != nil {
			return err
		}
		d.Specific[i].Name = name
		if name == "" {
			continue
		}
		level, err := s.promptLevel(ctx, "Niveau", d.Specific[i].Level)
		if err != nil {
			return err
		}
		d.Specific[i].Level = level
	}

	s.store.Update(func(out *draft.Draft) {
		copy(out.Specific, d.Specific)
	})
	return nil
}

func (s *session) promptGeneral(ctx context.Context) error {
	d := s.store.Draft()

	strengths, err := s.driver.Input(ctx, InputConfig{Message: "Points forts", Default: d.General.Strengths})
	if err != nil {
		return err
	}
	improvements, err := s.driver.Input(ctx, InputConfig{
		Message: "Axes d'amélioration",
		Default: d.General.AreasForImprovement,
	})
	if err != nil {
		return err
	}
	comment, err := s.driver.Input(ctx, InputConfig{
		Message: "Commentaire général",
		Default: d.General.OverallComment,
	})
	if err != nil {
		return err
	}
	rating, err := s.promptRating(ctx, "Appréciation globale", d.General.OverallRating)
	if err != nil {
		return err
	}

	s.store.Update(func(d *draft.Draft) {
		d.General.Strengths = strengths
		d.General.AreasForImprovement = improvements
		d.General.OverallComment = comment
		d.General.OverallRating = rating
	})
	return nil
}

// promptRating offers the 0-5 scale with 0 displayed as NA.
func (s *session) promptRating(ctx context.Context, label string, current int) (int, error) {
	options := []string{"NA", "1", "2", "3", "4", "5"}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: current,
	})
	if err != nil {
		return 0, err
	}
	return idx, nil
}

func (s *session) promptLevel(ctx context.Context, label string, current draft.CompetencyLevel) (draft.CompetencyLevel, error) {
	levels := draft.Levels()
	options := make([]string, len(levels))
	defaultIndex := 0
	for i, level := range levels {
		options[i] = string(level)
		if level == current {
			defaultIndex = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return current, err
	}
	return levels[idx], nil
}

func (s *session) promptGrade(ctx context.Context, label, current string) (string, error) {
	return s.driver.Input(ctx, InputConfig{
		Message: label,
		Default: current,
		Validator: func(value string) error {
			if value == "" {
				return nil
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return errors.New("entrez un nombre entre 0 et 20")
			}
			return nil
		},
	})
}
