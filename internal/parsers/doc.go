// Package parsers turns raw meeting-record bytes into structured text.
//
// The registry dispatches to format-specific parsers by file extension.
// Shared helpers extract the employee name from the file name and group
// paragraphs under detected section headers (goals, feedback, reviews).
package parsers
