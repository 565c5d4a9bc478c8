// Package config loads and merges veilvault configuration from environment
// variables, command-line flags and an optional JSON file.
//
// Sources are merged in priority order (earlier sources win for non-zero
// fields): environment, flags, JSON file. The JSON file path itself is
// resolved from the first two sources.
package config
