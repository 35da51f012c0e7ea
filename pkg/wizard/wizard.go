package wizard

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-stageval/pkg/draft"
	"go.uber.org/zap"
)

// Step indexes the wizard pages in order.
type Step int

const (
	StepPersonal Step = iota
	StepGlobal
	StepIndividual
	StepCompany
	StepSpecific
	StepGeneral

	stepCount
)

// StepCount is the number of wizard pages.
const StepCount = int(stepCount)

// String names the step for display and logging.
func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal-info"
	case StepGlobal:
		return "global-assessment"
	case StepIndividual:
		return "individual-competencies"
	case StepCompany:
		return "company-competencies"
	case StepSpecific:
		return "specific-competencies"
	case StepGeneral:
		return "general-assessment"
	}
	return "unknown"
}

// Phase is the controller's coarse state.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseDone
)

// ErrSubmitInFlight rejects a confirm while a submission is pending.
var ErrSubmitInFlight = errors.New("wizard: submission already in flight")

// ErrNotOnFinalStep rejects a confirm issued before the last step.
var ErrNotOnFinalStep = errors.New("wizard: confirm is only available on the final step")

// Submitter is the submission orchestrator the terminal step delegates to.
type Submitter interface {
	Submit(ctx context.Context, d draft.Draft) error
}

// Controller is the wizard state machine. It owns the current position and
// phase; the draft itself lives in the Store.
type Controller struct {
	store     *draft.Store
	submitter Submitter
	identity  func() Identity
	policy    ExistencePolicy
	log       *zap.Logger

	mu          sync.Mutex
	step        Step
	phase       Phase
	fieldErrors map[string]string
}

// ControllerOption mutates controller construction.
type ControllerOption func(*Controller)

// WithIdentityFunc supplies the source of the latest lookup statuses,
// typically closing over the two field resolvers.
func WithIdentityFunc(fn func() Identity) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.identity = fn
		}
	}
}

// WithPolicy overrides the CIN existence polarity. The evaluation flow
// default is MustExist.
func WithPolicy(policy ExistencePolicy) ControllerOption {
	return func(c *Controller) { c.policy = policy }
}

// WithLogger supplies a structured logger.
func WithLogger(log *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController builds a controller over a draft store and a submitter.
func NewController(store *draft.Store, submitter Submitter, fns ...ControllerOption) *Controller {
	c := &Controller{
		store:     store,
		submitter: submitter,
		identity:  func() Identity { return Identity{} },
		policy:    MustExist,
		log:       zap.NewNop(),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(c)
	}
	return c
}

// Step returns the current position.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// FieldErrors returns the errors surfaced by the last rejected transition.
func (c *Controller) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		out[k] = v
	}
	return out
}

// Validate runs the current step's rules without navigating.
func (c *Controller) Validate() Result {
	c.mu.Lock()
	step := c.step
	c.mu.Unlock()
	return Validate(step, c.store.Draft(), c.identity(), c.policy)
}

// Next advances to the following step when the current one validates.
// Otherwise the controller stays put and the result carries field errors.
func (c *Controller) Next() Result {
	result := c.Validate()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseEditing {
		result.Valid = false
		return result
	}
	if !result.Valid {
		c.fieldErrors = result.FieldErrors
		return result
	}
	c.fieldErrors = nil
	if int(c.step) < StepCount-1 {
		c.step++
	}
	return result
}

// Previous steps back without validation. The draft is untouched. It
// reports whether a move happened.
func (c *Controller) Previous() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseEditing || c.step == 0 {
		return false
	}
	c.step--
	c.fieldErrors = nil
	return true
}

// Confirm runs the submission from the terminal step. On success the draft
// resets and the wizard is Done; on failure the wizard returns to the last
// step with the draft preserved for a retry.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.phase != PhaseEditing || int(c.step) != StepCount-1 {
		c.mu.Unlock()
		return ErrNotOnFinalStep
	}
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	err := c.submitter.Submit(ctx, c.store.Draft())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.phase = PhaseEditing
		c.log.Warn("submission failed, draft preserved",
			zap.String("step", c.step.String()), zap.Error(err))
		return err
	}
	c.phase = PhaseDone
	c.store.Reset()
	c.log.Info("submission complete")
	return nil
}

// Restart begins a new wizard session after Done: fresh draft, first step.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.phase = PhaseEditing
	c.step = StepPersonal
	c.fieldErrors = nil
	c.store.Reset()
}
