// Package exporter writes the club summary to disk in CSV and JSON form.
// CSV files carry a UTF-8 BOM so they open cleanly in Excel.
package exporter
