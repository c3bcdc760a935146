// Package http exposes the reporting pipeline over a chi-based JSON API:
// health checks, report generation, summary retrieval and static download
// of generated report files.
package http
