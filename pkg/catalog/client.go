package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goliatone/go-stageval/internal/httpx"
)

// Client talks to the person catalog endpoints.
type Client struct {
	opts Options
	hc   *http.Client
}

// New constructs a catalog client with default options plus any overrides.
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

// CheckStagiaire resolves an intern by CIN. A 404 (or any non-2xx the check
// endpoint uses for absence) maps to ErrNotFound.
func (c *Client) CheckStagiaire(ctx context.Context, cin string) (Stagiaire, error) {
	var out Stagiaire
	err := c.get(ctx, "/api/stagiaires/check/"+url.PathEscape(cin), &out)
	if err != nil {
		return Stagiaire{}, fmt.Errorf("catalog: check stagiaire %q: %w", cin, notFoundOr(err))
	}
	return out, nil
}

// CheckTuteur resolves a tutor by CIN; absence maps to ErrNotFound.
func (c *Client) CheckTuteur(ctx context.Context, cin string) (Tuteur, error) {
	var out Tuteur
	err := c.get(ctx, "/api/tuteurs/check/"+url.PathEscape(cin), &out)
	if err != nil {
		return Tuteur{}, fmt.Errorf("catalog: check tuteur %q: %w", cin, notFoundOr(err))
	}
	return out, nil
}

// ListStagiaires returns every intern in the catalog.
func (c *Client) ListStagiaires(ctx context.Context) ([]Stagiaire, error) {
	var out []Stagiaire
	if err := c.get(ctx, "/api/stagiaires", &out); err != nil {
		return nil, fmt.Errorf("catalog: list stagiaires: %w", err)
	}
	return out, nil
}

// GetStagiaire fetches one intern by backend ID.
func (c *Client) GetStagiaire(ctx context.Context, id int) (Stagiaire, error) {
	var out Stagiaire
	err := c.get(ctx, "/api/stagiaires/"+strconv.Itoa(id), &out)
	if err != nil {
		return Stagiaire{}, fmt.Errorf("catalog: get stagiaire %d: %w", id, notFoundOr(err))
	}
	return out, nil
}

// CreateStagiaire registers a new intern and returns the stored record with
// its assigned ID.
func (c *Client) CreateStagiaire(ctx context.Context, s Stagiaire) (Stagiaire, error) {
	var out Stagiaire
	if err := c.do(ctx, http.MethodPost, "/api/stagiaires", s, &out); err != nil {
		return Stagiaire{}, fmt.Errorf("catalog: create stagiaire: %w", err)
	}
	return out, nil
}

// UpdateStagiaire replaces an intern record.
func (c *Client) UpdateStagiaire(ctx context.Context, id int, s Stagiaire) (Stagiaire, error) {
	var out Stagiaire
	err := c.do(ctx, http.MethodPut, "/api/stagiaires/"+strconv.Itoa(id), s, &out)
	if err != nil {
		return Stagiaire{}, fmt.Errorf("catalog: update stagiaire %d: %w", id, notFoundOr(err))
	}
	return out, nil
}

// DeleteStagiaire removes an intern record.
func (c *Client) DeleteStagiaire(ctx context.Context, id int) error {
	err := c.do(ctx, http.MethodDelete, "/api/stagiaires/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return fmt.Errorf("catalog: delete stagiaire %d: %w", id, notFoundOr(err))
	}
	return nil
}

// ListTuteurs returns every tutor in the catalog.
func (c *Client) ListTuteurs(ctx context.Context) ([]Tuteur, error) {
	var out []Tuteur
	if err := c.get(ctx, "/api/tuteurs", &out); err != nil {
		return nil, fmt.Errorf("catalog: list tuteurs: %w", err)
	}
	return out, nil
}

// GetTuteur fetches one tutor by backend ID.
func (c *Client) GetTuteur(ctx context.Context, id int) (Tuteur, error) {
	var out Tuteur
	err := c.get(ctx, "/api/tuteurs/"+strconv.Itoa(id), &out)
	if err != nil {
		return Tuteur{}, fmt.Errorf("catalog: get tuteur %d: %w", id, notFoundOr(err))
	}
	return out, nil
}

// CreateTuteur registers a new tutor.
func (c *Client) CreateTuteur(ctx context.Context, t Tuteur) (Tuteur, error) {
	var out Tuteur
	if err := c.do(ctx, http.MethodPost, "/api/tuteurs", t, &out); err != nil {
		return Tuteur{}, fmt.Errorf("catalog: create tuteur: %w", err)
	}
	return out, nil
}

// UpdateTuteur replaces a tutor record.
func (c *Client) UpdateTuteur(ctx context.Context, id int, t Tuteur) (Tuteur, error) {
	var out Tuteur
	err := c.do(ctx, http.MethodPut, "/api/tuteurs/"+strconv.Itoa(id), t, &out)
	if err != nil {
		return Tuteur{}, fmt.Errorf("catalog: update tuteur %d: %w", id, notFoundOr(err))
	}
	return out, nil
}

// DeleteTuteur removes a tutor record.
func (c *Client) DeleteTuteur(ctx context.Context, id int) error {
	err := c.do(ctx, http.MethodDelete, "/api/tuteurs/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return fmt.Errorf("catalog: delete tuteur %d: %w", id, notFoundOr(err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return httpx.DoJSON(ctx, c.hc, method, c.opts.BaseURL+path, in, out)
}

// notFoundOr maps 404 responses onto ErrNotFound while leaving other status
// and transport errors intact.
func notFoundOr(err error) error {
	var status *httpx.StatusError
	if errors.As(err, &status) && status.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}
