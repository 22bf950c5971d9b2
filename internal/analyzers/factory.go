package analyzers

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/analyzers/heuristic"
	"github.com/peopleops-labs/pir-analyzer/internal/analyzers/openai"
	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
)

// New builds the analyzer chain from settings.
// With an OpenAI key: AI analyzer with heuristic fallback.
// Without: heuristic alone.
func New(settings domain.Settings) driven.Analyzer {
	fallback := heuristic.New()

	if settings.OpenAIKey == "" {
		logger.Info("no OpenAI key configured, using heuristic analyzer")
		return fallback
	}

	ai, err := openai.New(settings)
	if err != nil {
		logger.Warn("AI analyzer unavailable: %v", err)
		return fallback
	}
	return WithFallback(ai, fallback)
}

// WithFallback wraps a primary analyzer with a fallback used when the
// primary cannot produce a verdict.
func WithFallback(primary, fallback driven.Analyzer) driven.Analyzer {
	return &fallbackAnalyzer{primary: primary, fallback: fallback}
}

type fallbackAnalyzer struct {
	primary  driven.Analyzer
	fallback driven.Analyzer
}

func (f *fallbackAnalyzer) Analyze(ctx context.Context, doc *domain.ParsedDocument) (*domain.AnalysisResult, error) {
	result, err := f.primary.Analyze(ctx, doc)
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logger.Warn("primary analyzer failed (%v), falling back to heuristic", err)
	return f.fallback.Analyze(ctx, doc)
}
