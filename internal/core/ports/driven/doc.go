// Package driven defines the interfaces the core depends on.
//
// Driven ports are implemented by adapters (storage, sources, parsers,
// analyzers) and injected into core services. The core never imports an
// adapter package directly.
package driven
