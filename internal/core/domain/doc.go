// Package domain defines the core business entities for the PIR analyzer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRef: A document snapshot taken at listing time
//   - Fingerprint: A content-derived digest used for change detection
//   - SyncRecord: The last-known state per document identity
//   - AnalysisResult: The outcome of analysing one meeting record
//   - RunSummary: Aggregated statistics for one analysis run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
