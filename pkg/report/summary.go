package report

import (
	"context"
	"fmt"

	"github.com/goliatone/go-stageval/pkg/backend"
)

// Summary is one row of the evaluations list: the composite key plus the
// display fields pulled out of the nested tuteur/periode graph.
type Summary struct {
	ID backend.AppreciationID

	TuteurCIN    string
	TuteurNom    string
	TuteurPrenom string

	StagiaireCIN    string
	StagiaireNom    string
	StagiairePrenom string

	Entreprise string
	DateDebut  string
	DateFin    string
}

// Lister is the slice of the backend client the report needs.
type Lister interface {
	ListAppreciations(ctx context.Context) ([]backend.AppreciationRecord, error)
}

// Summarize flattens one appreciation record.
func Summarize(record backend.AppreciationRecord) Summary {
	return Summary{
		ID:              record.ID,
		TuteurCIN:       record.Tuteur.CIN,
		TuteurNom:       record.Tuteur.Nom,
		TuteurPrenom:    record.Tuteur.Prenom,
		StagiaireCIN:    record.Periode.Stagiaire.CIN,
		StagiaireNom:    record.Periode.Stagiaire.Nom,
		StagiairePrenom: record.Periode.Stagiaire.Prenom,
		Entreprise:      record.Periode.Stage.Entreprise,
		DateDebut:       record.Periode.DateDebut,
		DateFin:         record.Periode.DateFin,
	}
}

// Summaries fetches every appreciation and flattens it for display.
func Summaries(ctx context.Context, lister Lister) ([]Summary, error) {
	records, err := lister.ListAppreciations(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	out := make([]Summary, 0, len(records))
	for _, record := range records {
		out = append(out, Summarize(record))
	}
	return out, nil
}
