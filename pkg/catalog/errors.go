package catalog

import (
	"errors"

	"github.com/goliatone/go-stageval/internal/httpx"
)

// ErrNotFound marks a CIN or ID the backend confirmed as absent. Transport
// failures are wrapped separately so callers can tell "confirmed absent"
// from "could not ask".
var ErrNotFound = errors.New("catalog: not found")

// StatusError re-exports the shared HTTP status error type.
type StatusError = httpx.StatusError
