// Package draft owns the in-progress evaluation record built up across the
// wizard steps. A Store holds exactly one Draft per wizard session, applies
// partial updates, and normalizes free text and grades on every write.
package draft
