// Package wizard sequences the evaluation form steps: forward navigation is
// gated by per-step validation, backward navigation is always allowed and
// never touches the draft, and the terminal step hands the draft to the
// submission orchestrator exactly once at a time.
package wizard
