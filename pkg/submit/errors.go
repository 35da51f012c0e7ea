package submit

import (
	"errors"
	"fmt"
)

// ErrInFlight rejects a second submission while one is pending. Callers are
// expected to disable the confirm action, not to queue.
var ErrInFlight = errors.New("submit: submission already in flight")

// Step names one sub-step of the submission saga.
type Step string

const (
	StepIdentity     Step = "identity"
	StepStage        Step = "stage"
	StepPeriode      Step = "periode"
	StepAppreciation Step = "appreciation"
)

// IdentityNotFoundError reports a CIN the catalog confirmed as absent. It is
// user-correctable and surfaced inline on the offending field.
type IdentityNotFoundError struct {
	Role string // "stagiaire" or "tuteur"
	CIN  string
}

func (e *IdentityNotFoundError) Error() string {
	return fmt.Sprintf("submit: %s %q not found in catalog", e.Role, e.CIN)
}

// StepError reports which saga step failed and wraps the underlying cause.
// Steps already completed stay persisted server-side; the journal records
// them so a retry resumes instead of duplicating.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("submit: %s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
