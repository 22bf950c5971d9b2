package openai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// verdict is the JSON structure the model is asked to return.
type verdict struct {
	MeetingOccurred     bool     `json:"meeting_occurred"`
	ConfidenceScore     float64  `json:"confidence_score"`
	Evidence            []string `json:"evidence"`
	RequiresHRAttention bool     `json:"requires_hr_attention"`
	AttentionReason     string   `json:"attention_reason"`
}

// extractVerdict parses the model response into a verdict.
// Models often wrap JSON in markdown fences or commentary; handle the
// common patterns before giving up.
func extractVerdict(response string) (*verdict, error) {
	jsonStr, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	var v verdict
	if err := json.Unmarshal([]byte(jsonStr), &v); err != nil {
		return nil, fmt.Errorf("unmarshal verdict: %w", err)
	}
	return &v, nil
}

// extractJSON finds the JSON object portion of a response string.
func extractJSON(response string) (string, error) {
	response = stripMarkdownCodeBlocks(response)

	// Try full response first
	var test any
	if err := json.Unmarshal([]byte(response), &test); err == nil {
		return response, nil
	}

	// Fall back to first '{' .. last '}'
	start := strings.Index(response, "{")
	if start != -1 {
		end := strings.LastIndex(response, "}")
		if end != -1 && end > start {
			jsonStr := response[start : end+1]
			if err := json.Unmarshal([]byte(jsonStr), &test); err == nil {
				return jsonStr, nil
			}
		}
	}

	preview := response
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return "", fmt.Errorf("no valid JSON in response: %q", preview)
}

// stripMarkdownCodeBlocks removes ```json fences around a response.
func stripMarkdownCodeBlocks(response string) string {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```json"))
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}

	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
	}

	return trimmed
}
