// Package vocab holds the backend evaluation vocabulary: the closed
// enumerations the appreciation service accepts and the per-dimension tables
// that translate 1-5 ordinal ratings into named values.
//
// The tables are total over {1..5}; rating 0 always maps to Unrated. Anything
// else is rejected at this boundary rather than silently defaulted.
package vocab
