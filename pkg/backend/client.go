package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goliatone/go-stageval/internal/httpx"
)

// StatusError re-exports the shared HTTP status error type.
type StatusError = httpx.StatusError

// Client talks to the stage, periode, and appreciation endpoints.
type Client struct {
	opts Options
	hc   *http.Client
}

// New constructs a backend client with default options plus any overrides.
func New(fns ...OptionFn) *Client {
	opts := NewOptions(fns...)
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{opts: opts, hc: hc}
}

// Options returns a copy of the client configuration.
func (c *Client) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// CreateStage persists a new stage and returns the backend-assigned ID.
func (c *Client) CreateStage(ctx context.Context, stage Stage) (int, error) {
	var out Stage
	if err := c.do(ctx, http.MethodPost, "/api/stages", stage, &out); err != nil {
		return 0, fmt.Errorf("backend: create stage: %w", err)
	}
	if out.ID == 0 {
		return 0, fmt.Errorf("backend: create stage: response carried no id")
	}
	return out.ID, nil
}

// CreatePeriode links a stagiaire to a stage. No ID is consumed downstream;
// the call is fire-and-forget beyond its success.
func (c *Client) CreatePeriode(ctx context.Context, periode Periode) error {
	if err := c.do(ctx, http.MethodPost, "/api/periodes", periode, nil); err != nil {
		return fmt.Errorf("backend: create periode: %w", err)
	}
	return nil
}

// CreateAppreciation persists the composite evaluation record.
func (c *Client) CreateAppreciation(ctx context.Context, appreciation Appreciation) error {
	if err := c.do(ctx, http.MethodPost, "/api/appreciations", appreciation, nil); err != nil {
		return fmt.Errorf("backend: create appreciation: %w", err)
	}
	return nil
}

// ListAppreciations returns every stored appreciation with its nested
// tuteur/periode graph.
func (c *Client) ListAppreciations(ctx context.Context) ([]AppreciationRecord, error) {
	var out []AppreciationRecord
	if err := c.do(ctx, http.MethodGet, "/api/appreciations", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: list appreciations: %w", err)
	}
	return out, nil
}

// GetAppreciation fetches one appreciation by its composite key.
func (c *Client) GetAppreciation(ctx context.Context, stagiaireID, stageID, tuteurID int) (AppreciationRecord, error) {
	path := "/api/appreciations/" + strconv.Itoa(stagiaireID) +
		"/" + strconv.Itoa(stageID) +
		"/" + strconv.Itoa(tuteurID)
	var out AppreciationRecord
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return AppreciationRecord{}, fmt.Errorf("backend: get appreciation %d/%d/%d: %w",
			stagiaireID, stageID, tuteurID, err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return httpx.DoJSON(ctx, c.hc, method, c.opts.BaseURL+path, in, out)
}
