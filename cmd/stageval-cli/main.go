package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-stageval/internal/config"
	"github.com/goliatone/go-stageval/pkg/backend"
	"github.com/goliatone/go-stageval/pkg/catalog"
	"github.com/goliatone/go-stageval/pkg/draft"
	"github.com/goliatone/go-stageval/pkg/lookup"
	"github.com/goliatone/go-stageval/pkg/submit"
	"github.com/goliatone/go-stageval/pkg/wizard"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, ErrAborted) {
			fmt.Fprintln(os.Stderr, "Interrompu.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "stageval: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	mode := "evaluate"
	if len(args) > 0 {
		mode = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	catalogClient := catalog.New(
		catalog.WithBaseURL(cfg.BaseURL),
		catalog.WithTimeout(timeout),
	)
	backendClient := backend.New(
		backend.WithBaseURL(cfg.BaseURL),
		backend.WithTimeout(timeout),
	)

	driver := surveyDriver{}

	switch mode {
	case "evaluate":
		return runWizard(ctx, driver, cfg, log, catalogClient, backendClient)
	case "list":
		return listEvaluations(ctx, os.Stdout, backendClient)
	case "add-stagiaire":
		return addStagiaire(ctx, driver, catalogClient)
	case "add-tuteur":
		return addTuteur(ctx, driver, catalogClient)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return nil
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func runWizard(ctx context.Context, driver PromptDriver, cfg *config.Config, log *zap.Logger, catalogClient *catalog.Client, backendClient *backend.Client) error {
	quiet := time.Duration(cfg.DebounceMS) * time.Millisecond
	stagiaires := lookup.ForStagiaires(catalogClient,
		lookup.WithQuietPeriod(quiet),
		lookup.WithLogger(log),
	)
	defer stagiaires.Stop()
	tuteurs := lookup.ForTuteurs(catalogClient,
		lookup.WithQuietPeriod(quiet),
		lookup.WithLogger(log),
	)
	defer tuteurs.Stop()

	store := draft.NewStore()
	submitter := submit.New(catalogClient, backendClient, submit.WithLogger(log))
	controller := wizard.NewController(store, submitter,
		wizard.WithLogger(log),
		wizard.WithIdentityFunc(func() wizard.Identity {
			return wizard.Identity{
				Stagiaire: stagiaires.Current().Status,
				Tuteur:    tuteurs.Current().Status,
			}
		}),
	)

	session := &session{
		driver:     driver,
		store:      store,
		controller: controller,
		stagiaires: stagiaires,
		tuteurs:    tuteurs,
		log:        log,
	}
	return session.run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func usage(out *os.File) {
	fmt.Fprintln(out, `Usage: stageval-cli [mode]

Modes:
  evaluate       run the evaluation wizard (default)
  list           list submitted evaluations
  add-stagiaire  register a new intern
  add-tuteur     register a new supervisor

Configuration comes from STAGEVAL_* environment variables or the YAML
file named by STAGEVAL_CONFIG.`)
}
