// Package openai implements the AI-backed meeting analyzer using the
// OpenAI Chat Completions API.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// maxDocumentChars bounds the document text sent to the model.
const maxDocumentChars = 12000

const systemPrompt = `You are an HR assistant analysing individual development plan (ПИР) records.
Your task is to determine whether the scheduled meeting between employee and manager actually took place.

Held meetings show up as substantive comments, feedback, discussion points,
action items, or references to conversations. Empty sections where meeting
content should be indicate a missed meeting.

Respond with a JSON object:
{
  "meeting_occurred": boolean,
  "confidence_score": number between 0 and 1,
  "evidence": [short text fragments supporting the verdict],
  "requires_hr_attention": boolean,
  "attention_reason": "why HR should follow up, or empty"
}`

// chatClient is the slice of the OpenAI client the analyzer uses.
// Narrowed for test doubles.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Analyzer implements the interface.
var _ driven.Analyzer = (*Analyzer)(nil)

// Analyzer produces meeting verdicts with an OpenAI chat model.
type Analyzer struct {
	client      chatClient
	model       string
	maxTokens   int
	temperature float32
}

// New creates an AI analyzer from settings.
func New(settings domain.Settings) (*Analyzer, error) {
	if settings.OpenAIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI key not configured", domain.ErrAnalysisUnavailable)
	}

	return &Analyzer{
		client:      openai.NewClient(settings.OpenAIKey),
		model:       settings.Model,
		maxTokens:   settings.MaxTokens,
		temperature: settings.Temperature,
	}, nil
}

// NewWithClient creates an analyzer with a custom chat client.
func NewWithClient(client chatClient, model string) *Analyzer {
	return &Analyzer{client: client, model: model}
}

// Analyze sends the parsed document to the model and maps the verdict.
func (a *Analyzer) Analyze(ctx context.Context, doc *domain.ParsedDocument) (*domain.AnalysisResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(doc)},
		},
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chat completion: %w", domain.ErrAnalysisUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response choices", domain.ErrAnalysisUnavailable)
	}

	v, err := extractVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAnalysisUnavailable, err)
	}

	return &domain.AnalysisResult{
		EmployeeName:      doc.EmployeeName,
		MeetingDetected:   v.MeetingOccurred,
		AttentionRequired: v.RequiresHRAttention,
		AttentionReason:   v.AttentionReason,
		Evidence:          v.Evidence,
		Confidence:        v.ConfidenceScore,
		Method:            domain.MethodAI,
		AnalyzedAt:        time.Now(),
	}, nil
}

// buildPrompt assembles the user message from the parsed document.
func buildPrompt(doc *domain.ParsedDocument) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Employee: %s\n", doc.EmployeeName)
	fmt.Fprintf(&sb, "Word count: %d\n\n", doc.WordCount)

	if len(doc.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for name, lines := range doc.Sections {
			fmt.Fprintf(&sb, "- %s (%d paragraphs)\n", name, len(lines))
		}
		sb.WriteString("\n")
	}

	text := doc.Text
	if len(text) > maxDocumentChars {
		// Cut on a rune boundary; the documents are largely Cyrillic.
		cut := maxDocumentChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	sb.WriteString("Document text:\n")
	sb.WriteString(text)
	return sb.String()
}
