package main

import (
	"context"
	"fmt"

	"github.com/goliatone/go-stageval/pkg/catalog"
	"github.com/goliatone/go-stageval/pkg/lookup"
	"github.com/goliatone/go-stageval/pkg/wizard"
)

// addStagiaire walks the intern creation flow. The CIN must be absent from
// the catalog before the record is created.
func addStagiaire(ctx context.Context, driver PromptDriver, client *catalog.Client) error {
	resolver := lookup.ForStagiaires(client)
	defer resolver.Stop()

	cin, err := promptFreshCIN(ctx, driver, resolver, "stagiaire")
	if err != nil {
		return err
	}

	record := catalog.Stagiaire{CIN: cin}
	fields := []struct {
		message  string
		required bool
		value    *string
	}{
		{"Nom", true, &record.Nom},
		{"Prénom", true, &record.Prenom},
		{"Email", false, &record.Email},
		{"Institution", false, &record.Institution},
		{"Niveau", false, &record.Niveau},
		{"Description", false, &record.Description},
	}
	if err := promptFields(ctx, driver, fields); err != nil {
		return err
	}

	created, err := client.CreateStagiaire(ctx, record)
	if err != nil {
		return err
	}
	driver.Info(ctx, fmt.Sprintf("Stagiaire créé: %s (id=%d)", created.FullName(), created.ID))
	return nil
}

// addTuteur walks the supervisor creation flow with the same CIN polarity.
func addTuteur(ctx context.Context, driver PromptDriver, client *catalog.Client) error {
	resolver := lookup.ForTuteurs(client)
	defer resolver.Stop()

	cin, err := promptFreshCIN(ctx, driver, resolver, "tuteur")
	if err != nil {
		return err
	}

	record := catalog.Tuteur{CIN: cin}
	fields := []struct {
		message  string
		required bool
		value    *string
	}{
		{"Nom", true, &record.Nom},
		{"Prénom", true, &record.Prenom},
		{"Email", false, &record.Email},
		{"Fonction", false, &record.Fonction},
		{"Entreprise", false, &record.Entreprise},
		{"Technologies", false, &record.Technos},
	}
	if err := promptFields(ctx, driver, fields); err != nil {
		return err
	}

	created, err := client.CreateTuteur(ctx, record)
	if err != nil {
		return err
	}
	driver.Info(ctx, fmt.Sprintf("Tuteur créé: %s (id=%d)", created.FullName(), created.ID))
	return nil
}

// promptFreshCIN loops until the user enters a CIN the catalog does not
// already know, or aborts.
func promptFreshCIN(ctx context.Context, driver PromptDriver, resolver *lookup.Resolver, role string) (string, error) {
	for {
		cin, err := driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("CIN du %s", role),
			Validator: requireValue("le CIN est requis"),
		})
		if err != nil {
			return "", err
		}

		result := resolver.Resolve(ctx, cin)
		if msg, ok := wizard.CheckCIN(result.Status, wizard.MustNotExist); !ok {
			driver.Info(ctx, msg)
			if result.Status == lookup.StatusErrored {
				return "", result.Err
			}
			continue
		}
		return cin, nil
	}
}

func promptFields(ctx context.Context, driver PromptDriver, fields []struct {
	message  string
	required bool
	value    *string
}) error {
	for _, field := range fields {
		cfg := InputConfig{Message: field.message, Default: *field.value}
		if field.required {
			cfg.Validator = requireValue("ce champ est requis")
		}
		out, err := driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		*field.value = out
	}
	return nil
}

func requireValue(msg string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}
