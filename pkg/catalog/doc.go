// Package catalog is the typed REST client for the person catalog: stagiaires
// (interns) and tuteurs (workplace supervisors). Persons are keyed for humans
// by CIN and for the backend by numeric ID; the check endpoints translate the
// former into the latter.
package catalog
