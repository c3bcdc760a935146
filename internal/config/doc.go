// Package config provides application configuration loaded from environment
// variables (FCP_ prefix) merged over an optional YAML file, plus the
// executable-relative path layout shared by every binary.
package config
