package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-stageval/pkg/backend"
	"github.com/goliatone/go-stageval/pkg/catalog"
	"github.com/goliatone/go-stageval/pkg/draft"
	"go.uber.org/zap"
)

// IdentitySource resolves CINs against the person catalog.
type IdentitySource interface {
	CheckStagiaire(ctx context.Context, cin string) (catalog.Stagiaire, error)
	CheckTuteur(ctx context.Context, cin string) (catalog.Tuteur, error)
}

// ResourceClient creates the backend resources the saga produces.
type ResourceClient interface {
	CreateStage(ctx context.Context, stage backend.Stage) (int, error)
	CreatePeriode(ctx context.Context, periode backend.Periode) error
	CreateAppreciation(ctx context.Context, appreciation backend.Appreciation) error
}

// Submitter runs the submission saga. One submission may be in flight at a
// time; a concurrent attempt fails with ErrInFlight.
type Submitter struct {
	identities IdentitySource
	resources  ResourceClient
	log        *zap.Logger

	mu       sync.Mutex
	inFlight bool
	journal  *journal
}

// New constructs a Submitter over the two backend clients.
func New(identities IdentitySource, resources ResourceClient, fns ...OptionFn) *Submitter {
	opts := NewOptions(fns...)
	return &Submitter{
		identities: identities,
		resources:  resources,
		log:        opts.Logger,
	}
}

// Submit executes the ordered saga for the given draft. On failure the
// caller keeps the draft and may retry; completed steps are journaled and
// skipped on the retry. On success the journal is discarded.
func (s *Submitter) Submit(ctx context.Context, d draft.Draft) error {
	if err := s.begin(d); err != nil {
		return err
	}
	defer s.end()

	// Map ratings before touching the network so an invalid draft can never
	// leave orphaned resources behind.
	evaluations, err := Evaluations(d)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	competences := Competences(d)

	log := s.log.With(zap.String("attempt_id", s.journal.AttemptID.String()))

	stagiaireID, tuteurID, err := s.resolveIdentities(ctx, d)
	if err != nil {
		return err
	}
	log = log.With(zap.Int("stagiaire_id", stagiaireID), zap.Int("tuteur_id", tuteurID))

	stageID, created, err := s.ensureStage(ctx, d)
	if err != nil {
		log.Error("stage creation failed", zap.Error(err))
		return err
	}
	if created {
		log.Info("stage created", zap.Int("stage_id", stageID))
	} else {
		log.Info("stage reused from journal", zap.Int("stage_id", stageID))
	}

	if err := s.ensurePeriode(ctx, d, stagiaireID, stageID); err != nil {
		// The stage above stays persisted server-side; record the partial
		// state so operational cleanup is possible.
		log.Error("periode creation failed, stage left orphaned",
			zap.Int("stage_id", stageID), zap.Error(err))
		return err
	}

	appreciation := backend.Appreciation{
		StagiaireID: stagiaireID,
		StageID:     stageID,
		TuteurID:    tuteurID,
		Evaluations: evaluations,
		Competences: competences,
	}
	if err := s.resources.CreateAppreciation(ctx, appreciation); err != nil {
		log.Error("appreciation creation failed, stage and periode left behind",
			zap.Int("stage_id", stageID), zap.Error(err))
		return &StepError{Step: StepAppreciation, Err: err}
	}

	log.Info("evaluation submitted", zap.Int("stage_id", stageID))
	s.mu.Lock()
	s.journal = nil
	s.mu.Unlock()
	return nil
}

// Reset discards any journaled partial submission, forcing the next attempt
// to start from scratch. A reset issued while a submission is in flight is
// ignored; the running attempt owns the journal until it finishes.
func (s *Submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return
	}
	s.journal = nil
}

// begin acquires the single-flight slot and lines up the journal for this
// logical submission.
func (s *Submitter) begin(d draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrInFlight
	}

	fp := fingerprint(d)
	if s.journal != nil && s.journal.Fingerprint != fp {
		s.log.Info("draft changed since last attempt, discarding journal",
			zap.String("attempt_id", s.journal.AttemptID.String()))
		s.journal = nil
	}
	if s.journal == nil {
		s.journal = newJournal(fp)
	} else {
		s.log.Info("resuming partial submission",
			zap.String("attempt_id", s.journal.AttemptID.String()),
			zap.Int("stage_id", s.journal.StageID),
			zap.Bool("periode_done", s.journal.PeriodeDone))
	}

	s.inFlight = true
	return nil
}

func (s *Submitter) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Submitter) resolveIdentities(ctx context.Context, d draft.Draft) (int, int, error) {
	s.mu.Lock()
	stagiaireID, tuteurID := s.journal.StagiaireID, s.journal.TuteurID
	s.mu.Unlock()

	if d.StagiaireID != 0 {
		stagiaireID = d.StagiaireID
	}
	if d.TuteurID != 0 {
		tuteurID = d.TuteurID
	}

	if stagiaireID == 0 {
		record, err := s.identities.CheckStagiaire(ctx, d.StagiaireCIN)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return 0, 0, &IdentityNotFoundError{Role: "stagiaire", CIN: d.StagiaireCIN}
			}
			return 0, 0, &StepError{Step: StepIdentity, Err: err}
		}
		stagiaireID = record.ID
	}
	if tuteurID == 0 {
		record, err := s.identities.CheckTuteur(ctx, d.TuteurCIN)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return 0, 0, &IdentityNotFoundError{Role: "tuteur", CIN: d.TuteurCIN}
			}
			return 0, 0, &StepError{Step: StepIdentity, Err: err}
		}
		tuteurID = record.ID
	}

	s.mu.Lock()
	s.journal.StagiaireID, s.journal.TuteurID = stagiaireID, tuteurID
	s.mu.Unlock()
	return stagiaireID, tuteurID, nil
}

// ensureStage creates the stage unless a previous attempt already did.
func (s *Submitter) ensureStage(ctx context.Context, d draft.Draft) (int, bool, error) {
	s.mu.Lock()
	stageID := s.journal.StageID
	s.mu.Unlock()
	if stageID != 0 {
		return stageID, false, nil
	}

	stageID, err := s.resources.CreateStage(ctx, backend.Stage{
		Description: d.ProjectTheme,
		Objectif:    d.Objectives,
		Entreprise:  d.CompanyName,
	})
	if err != nil {
		return 0, false, &StepError{Step: StepStage, Err: err}
	}

	s.mu.Lock()
	s.journal.StageID = stageID
	s.mu.Unlock()
	return stageID, true, nil
}

// ensurePeriode links stagiaire and stage unless a previous attempt already
// did.
func (s *Submitter) ensurePeriode(ctx context.Context, d draft.Draft, stagiaireID, stageID int) error {
	s.mu.Lock()
	done := s.journal.PeriodeDone
	s.mu.Unlock()
	if done {
		return nil
	}

	err := s.resources.CreatePeriode(ctx, backend.Periode{
		StagiaireID: stagiaireID,
		StageID:     stageID,
		DateDebut:   d.StartDate,
		DateFin:     d.EndDate,
	})
	if err != nil {
		return &StepError{Step: StepPeriode, Err: err}
	}

	s.mu.Lock()
	s.journal.PeriodeDone = true
	s.mu.Unlock()
	return nil
}
