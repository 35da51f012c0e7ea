package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-stageval/pkg/catalog"
	"go.uber.org/zap"
)

// Status classifies the outcome of the most recent lookup.
type Status int

const (
	// StatusUnresolved means no lookup has completed for the current input
	// (empty input, input below the minimum length, or a lookup still
	// pending).
	StatusUnresolved Status = iota

	// StatusResolved means the catalog returned a record for the input.
	StatusResolved

	// StatusNotFound means the catalog confirmed the CIN is absent.
	StatusNotFound

	// StatusErrored means the lookup could not complete (network fault or
	// server error). Display-wise it reads like NotFound, but callers that
	// need to decide between retry and abort can tell them apart.
	StatusErrored
)

// Result is the state a resolver publishes after each settled lookup.
type Result struct {
	Status      Status
	CIN         string
	ID          int
	DisplayName string
	Err         error
}

// Person is the slice of a catalog record the resolver cares about.
type Person struct {
	ID   int
	Name string
}

// ResolveFunc performs the actual catalog call. Confirmed absence must be
// reported via catalog.ErrNotFound; any other error counts as a fault.
type ResolveFunc func(ctx context.Context, cin string) (Person, error)

// Resolver debounces CIN input and applies only the most recent lookup's
// outcome. Safe for concurrent use.
type Resolver struct {
	fn     ResolveFunc
	opts   Options
	log    *zap.Logger
	notify func(Result)

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	last  Result
}

// New builds a resolver around a ResolveFunc.
func New(fn ResolveFunc, fns ...OptionFn) *Resolver {
	opts := NewOptions(fns...)
	return &Resolver{
		fn:     fn,
		opts:   opts,
		log:    opts.Logger,
		notify: opts.Notify,
	}
}

// ForStagiaires builds a resolver backed by the stagiaire check endpoint.
func ForStagiaires(client *catalog.Client, fns ...OptionFn) *Resolver {
	return New(func(ctx context.Context, cin string) (Person, error) {
		record, err := client.CheckStagiaire(ctx, cin)
		if err != nil {
			return Person{}, err
		}
		return Person{ID: record.ID, Name: record.FullName()}, nil
	}, fns...)
}

// ForTuteurs builds a resolver backed by the tuteur check endpoint.
func ForTuteurs(client *catalog.Client, fns ...OptionFn) *Resolver {
	return New(func(ctx context.Context, cin string) (Person, error) {
		record, err := client.CheckTuteur(ctx, cin)
		if err != nil {
			return Person{}, err
		}
		return Person{ID: record.ID, Name: record.FullName()}, nil
	}, fns...)
}

// Observe registers a new input value. Inputs shorter than the minimum
// length settle synchronously to Unresolved without any network call; longer
// inputs (re)arm the debounce timer, cancelling any pending lookup.
func (r *Resolver) Observe(ctx context.Context, cin string) {
	cin = strings.TrimSpace(cin)

	r.mu.Lock()
	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if len(cin) < r.opts.MinLength {
		r.last = Result{Status: StatusUnresolved, CIN: cin}
		notify := r.notify
		last := r.last
		r.mu.Unlock()
		if notify != nil {
			notify(last)
		}
		return
	}

	r.timer = time.AfterFunc(r.opts.QuietPeriod, func() {
		r.fire(ctx, gen, cin)
	})
	r.mu.Unlock()
}

// Resolve performs an immediate, non-debounced lookup and publishes the
// outcome. The submission path uses this when IDs are still unset.
func (r *Resolver) Resolve(ctx context.Context, cin string) Result {
	cin = strings.TrimSpace(cin)

	r.mu.Lock()
	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.mu.Unlock()

	if len(cin) < r.opts.MinLength {
		result := Result{Status: StatusUnresolved, CIN: cin}
		r.apply(gen, result)
		return result
	}
	return r.lookup(ctx, gen, cin)
}

// Current returns the most recently applied result.
func (r *Resolver) Current() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Stop cancels any pending debounced lookup. Results of lookups already in
// flight are discarded.
func (r *Resolver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Resolver) fire(ctx context.Context, gen uint64, cin string) {
	r.lookup(ctx, gen, cin)
}

func (r *Resolver) lookup(ctx context.Context, gen uint64, cin string) Result {
	person, err := r.fn(ctx, cin)

	result := Result{CIN: cin}
	switch {
	case err == nil:
		result.Status = StatusResolved
		result.ID = person.ID
		result.DisplayName = person.Name
	case errors.Is(err, catalog.ErrNotFound):
		result.Status = StatusNotFound
		result.Err = err
	default:
		result.Status = StatusErrored
		result.Err = err
		r.log.Warn("lookup failed", zap.String("cin", cin), zap.Error(err))
	}

	r.apply(gen, result)
	return result
}

// apply installs a result unless a newer observation superseded it.
func (r *Resolver) apply(gen uint64, result Result) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.last = result
	notify := r.notify
	r.mu.Unlock()
	if notify != nil {
		notify(result)
	}
}
