// Package report flattens the nested appreciation read model into rows
// suitable for list and detail display.
package report
