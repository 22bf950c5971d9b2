// Package services contains the core business logic: storage backend
// selection, the analysis orchestrator, and the background scheduler.
//
// Services depend only on domain types and ports; adapters are injected
// at construction time.
package services
