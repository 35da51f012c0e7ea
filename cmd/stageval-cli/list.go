package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goliatone/go-stageval/pkg/report"
)

// listEvaluations prints every submitted appreciation as a table.
func listEvaluations(ctx context.Context, out io.Writer, lister report.Lister) error {
	summaries, err := report.Summaries(ctx, lister)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(out, "Aucune évaluation enregistrée.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAGIAIRE\tCIN\tTUTEUR\tCIN\tENTREPRISE\tDEBUT\tFIN")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s %s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
			s.StagiairePrenom, s.StagiaireNom, s.StagiaireCIN,
			s.TuteurPrenom, s.TuteurNom, s.TuteurCIN,
			s.Entreprise, s.DateDebut, s.DateFin)
	}
	return w.Flush()
}
