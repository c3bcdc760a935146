// Package report renders a club summary into the markdown performance
// report. Rendering is deterministic so report output can be verified
// against golden files.
package report
