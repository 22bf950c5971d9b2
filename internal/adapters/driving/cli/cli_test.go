package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driving"
)

// mockAnalysisRunner implements driving.AnalysisRunner for command tests.
type mockAnalysisRunner struct {
	summary   *domain.RunSummary
	status    *domain.StorageStatus
	err       error
	lastForce bool
}

var _ driving.AnalysisRunner = (*mockAnalysisRunner)(nil)

func (m *mockAnalysisRunner) Run(_ context.Context, force bool) (*domain.RunSummary, error) {
	m.lastForce = force
	if m.err != nil {
		return nil, m.err
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &domain.RunSummary{Backend: domain.SourceLocal}, nil
}

func (m *mockAnalysisRunner) Status(_ context.Context) (*domain.StorageStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.status != nil {
		return m.status, nil
	}
	return &domain.StorageStatus{Backend: domain.SourceLocal, Connected: true, LocalDir: "/docs"}, nil
}

func (m *mockAnalysisRunner) Stop() {}

// setupRunner swaps the package services for a mock and returns a restore
// function.
func setupRunner(runner *mockAnalysisRunner) func() {
	oldService := analysisService
	oldResults := resultStore
	analysisService = runner
	resultStore = nil
	return func() {
		analysisService = oldService
		resultStore = oldResults
	}
}

// execute runs the root command with args and captures combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

var errMockRun = errors.New("run failed")
