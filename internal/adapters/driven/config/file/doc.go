// Package file provides a TOML file-based configuration store.
//
// Configuration lives in ~/.pir-analyzer/config.toml. Nested TOML
// tables are flattened to dot-notation keys, and typed Settings are
// assembled from those keys with environment overrides on top.
package file
