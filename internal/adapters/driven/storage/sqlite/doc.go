// Package sqlite provides the durable metadata store.
//
// A single SQLite database backs the sync-record, analysis-result and
// scheduler stores, exposed through wrapper types implementing the
// driven port interfaces. The schema is managed by embedded migrations.
package sqlite
