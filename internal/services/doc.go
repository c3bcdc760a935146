// Package services wires the loading, analysis and export packages into
// the operations the binaries expose: running a report generation pass,
// listing generated reports and serving health checks.
package services
