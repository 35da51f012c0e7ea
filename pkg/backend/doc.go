// Package backend is the typed REST client for the evaluation resources:
// stages, periodes, and appreciations. Creation endpoints are strictly
// additive; nothing in this package updates or deletes these resources.
package backend
