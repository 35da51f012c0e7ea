// Package submit orchestrates the evaluation submission: resolve both
// identities, create the stage, link it with a periode, then post the
// composite appreciation. The calls are strictly ordered, each consuming the
// previous call's output, and none of them is rolled back on later failure.
//
// To keep a failed attempt from duplicating backend resources, the submitter
// journals completed sub-steps per logical submission; retrying the same
// draft resumes after the last completed step.
package submit
