package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// mockClient is a test double for the chat client.
type mockClient struct {
	response string
	err      error
	lastReq  openai.ChatCompletionRequest
}

func (m *mockClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return openai.ChatCompletionResponse{}, m.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: m.response}},
		},
	}, nil
}

func sampleDoc() *domain.ParsedDocument {
	return &domain.ParsedDocument{
		EmployeeName: "Иванов Иван",
		Text:         "Обсудили цели на квартал",
		Sections:     map[string][]string{"feedback": {"Обсудили цели на квартал"}},
		WordCount:    4,
	}
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(domain.Settings{})

	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
}

func TestAnalyze_MapsVerdict(t *testing.T) {
	client := &mockClient{
		response: `{"meeting_occurred": true, "confidence_score": 0.92,
			"evidence": ["обсудили цели"], "requires_hr_attention": false}`,
	}
	analyzer := NewWithClient(client, "gpt-4o-mini")

	result, err := analyzer.Analyze(context.Background(), sampleDoc())

	require.NoError(t, err)
	assert.True(t, result.MeetingDetected)
	assert.False(t, result.AttentionRequired)
	assert.InDelta(t, 0.92, result.Confidence, 0.0001)
	assert.Equal(t, []string{"обсудили цели"}, result.Evidence)
	assert.Equal(t, domain.MethodAI, result.Method)
	assert.Equal(t, "Иванов Иван", result.EmployeeName)

	assert.Equal(t, "gpt-4o-mini", client.lastReq.Model)
	require.Len(t, client.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, client.lastReq.Messages[0].Role)
	assert.Contains(t, client.lastReq.Messages[1].Content, "Иванов Иван")
}

func TestAnalyze_MarkdownWrappedResponse(t *testing.T) {
	client := &mockClient{
		response: "```json\n{\"meeting_occurred\": false, \"confidence_score\": 0.8, " +
			"\"requires_hr_attention\": true, \"attention_reason\": \"empty sections\"}\n```",
	}
	analyzer := NewWithClient(client, "gpt-4o-mini")

	result, err := analyzer.Analyze(context.Background(), sampleDoc())

	require.NoError(t, err)
	assert.False(t, result.MeetingDetected)
	assert.True(t, result.AttentionRequired)
	assert.Equal(t, "empty sections", result.AttentionReason)
}

func TestAnalyze_APIError(t *testing.T) {
	analyzer := NewWithClient(&mockClient{err: errors.New("rate limited")}, "gpt-4o-mini")

	_, err := analyzer.Analyze(context.Background(), sampleDoc())

	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
}

func TestAnalyze_GarbageResponse(t *testing.T) {
	analyzer := NewWithClient(&mockClient{response: "sorry, I cannot help"}, "gpt-4o-mini")

	_, err := analyzer.Analyze(context.Background(), sampleDoc())

	assert.ErrorIs(t, err, domain.ErrAnalysisUnavailable)
}

func TestAnalyze_NilDocument(t *testing.T) {
	analyzer := NewWithClient(&mockClient{}, "gpt-4o-mini")

	_, err := analyzer.Analyze(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractJSON_EmbeddedInText(t *testing.T) {
	jsonStr, err := extractJSON(`Here is my analysis: {"meeting_occurred": true} hope it helps`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"meeting_occurred": true}`, jsonStr)
}
