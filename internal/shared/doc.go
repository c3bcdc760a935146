// Package shared provides common utilities and test helpers used across
// the fcpulse codebase. It serves as a central location for functionality
// that doesn't belong to any specific domain or architectural layer.
//
// The testutil subpackage provides a buffered slog handler for asserting
// on log output, plus fixture writers that lay down small dataset files
// for tests that exercise the loading pipeline end to end.
//
// This package should only contain test utilities and generic helpers; it
// must not import other internal packages or carry business logic.
package shared
