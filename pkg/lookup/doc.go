// Package lookup resolves CIN input into catalog records with debounce
// semantics suitable for live validation feedback: a lookup fires only after
// the input has been quiet for a configurable period, and a superseded
// in-flight lookup can never overwrite the state of a newer one.
//
// Each Resolver owns its own pending timer; nothing is stored on shared or
// package-level state, so two fields on the same form get two independent
// resolvers.
package lookup
