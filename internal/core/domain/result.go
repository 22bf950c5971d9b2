package domain

import "time"

// AnalysisMethod records how a result was produced.
type AnalysisMethod string

const (
	// MethodAI marks results produced by the LLM-backed analyzer.
	MethodAI AnalysisMethod = "ai"

	// MethodHeuristic marks results produced by the keyword fallback.
	MethodHeuristic AnalysisMethod = "heuristic"
)

// ParsedDocument is the structured text a parser extracts from raw bytes.
type ParsedDocument struct {
	// EmployeeName is extracted from the file name or document body.
	EmployeeName string

	// Text is the full extracted text content.
	Text string

	// Sections groups paragraphs under detected section headers.
	Sections map[string][]string

	// WordCount is the number of words in Text.
	WordCount int
}

// AnalysisResult is the outcome of analysing one meeting record.
// The orchestrator stores the full result and folds only the summary
// flags into run statistics.
type AnalysisResult struct {
	// ID is the unique identifier for this result.
	ID string

	// DocumentID is the identity of the analysed document.
	DocumentID string

	// EmployeeName is the employee the record belongs to.
	EmployeeName string

	// MeetingDetected reports whether the record describes a held meeting.
	MeetingDetected bool

	// AttentionRequired flags cases needing HR follow-up.
	AttentionRequired bool

	// AttentionReason explains why attention is required, when it is.
	AttentionReason string

	// Evidence lists the text fragments supporting the verdict.
	Evidence []string

	// Confidence is the analyzer's confidence in the verdict (0-1).
	Confidence float64

	// Method records which analyzer produced this result.
	Method AnalysisMethod

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time
}
