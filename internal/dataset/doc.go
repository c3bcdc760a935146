// Package dataset provides the record types and loaders for the three club
// datasets: stadium operations, merchandise sales and fanbase engagement.
//
// Loaders accept CSV (canonical) or Excel workbooks and map columns by
// header name, so column order in the source files does not matter. A
// dataset missing a required column fails with a schema mismatch error; an
// empty dataset, or one whose required numeric column exceeds the
// configured missing-value tolerance, fails with a missing data error.
// Records are immutable once loaded.
package dataset
