// Package heuristic implements keyword-based meeting detection.
//
// It is the fallback analyzer when no AI backend is configured or the
// AI call fails. Detection looks for meeting vocabulary (Russian and
// English) and substantial content in meeting-related sections.
package heuristic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// minSectionContent is the content length below which a meeting section
// counts as empty.
const minSectionContent = 50

// Confidence assigned to heuristic verdicts. A missed meeting is the
// safer call, so its confidence is slightly higher.
const (
	confidenceDetected = 0.6
	confidenceMissed   = 0.7
)

// meetingKeywords holds the vocabulary indicating a held meeting.
var meetingKeywords = []string{
	// English
	"meeting", "checkpoint", "review", "discussion",
	"conversation", "call", "session", "talked", "discussed",
	// Russian
	"встреча", "обсуждение", "разговор", "созвон",
	"беседа", "чекпоинт", "ревью", "обговорили",
}

// meetingSections are the section names where meeting evidence lives.
var meetingSections = []string{
	"performance_review", "quarterly_checkpoint", "feedback", "plans_before_review",
}

// Ensure Analyzer implements the interface.
var _ driven.Analyzer = (*Analyzer)(nil)

// Analyzer detects meetings with keyword matching.
type Analyzer struct{}

// New creates a new heuristic analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze inspects the parsed document for meeting evidence.
func (a *Analyzer) Analyze(_ context.Context, doc *domain.ParsedDocument) (*domain.AnalysisResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	var evidence []string

	// Substantial content in meeting sections is the primary signal.
	for _, name := range meetingSections {
		content := strings.TrimSpace(strings.Join(doc.Sections[name], " "))
		if len(content) > minSectionContent {
			evidence = append(evidence, fmt.Sprintf("content found in %s section", name))
		}
	}

	// Meeting vocabulary anywhere in the text is the secondary signal.
	lower := strings.ToLower(doc.Text)
	for _, keyword := range meetingKeywords {
		if strings.Contains(lower, keyword) {
			evidence = append(evidence, fmt.Sprintf("keyword %q present", keyword))
			break
		}
	}

	detected := len(evidence) > 0
	result := &domain.AnalysisResult{
		EmployeeName:    doc.EmployeeName,
		MeetingDetected: detected,
		Evidence:        evidence,
		Confidence:      confidenceDetected,
		Method:          domain.MethodHeuristic,
		AnalyzedAt:      time.Now(),
	}
	if !detected {
		result.Confidence = confidenceMissed
		result.AttentionRequired = true
		result.AttentionReason = "no evidence of a held meeting in the development plan"
	}
	return result, nil
}
