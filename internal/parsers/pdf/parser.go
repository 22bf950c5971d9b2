// Package pdf parses PDF meeting records using the poppler pdftotext tool.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes external commands. Mockable for tests.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser extracts text from PDF files via pdftotext.
type Parser struct {
	runner CommandRunner
}

// New creates a new PDF parser using the system pdftotext binary.
func New() *Parser {
	return &Parser{runner: execRunner{}}
}

// NewWithRunner creates a PDF parser with a custom command runner.
func NewWithRunner(runner CommandRunner) *Parser {
	return &Parser{runner: runner}
}

// SupportedExtensions returns the extensions this parser handles.
func (p *Parser) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Parse writes the content to a temp file and extracts text with pdftotext.
func (p *Parser) Parse(ctx context.Context, content []byte, name string) (*domain.ParsedDocument, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrCorruptDocument, name)
	}

	tmpDir, err := os.MkdirTemp("", "pir-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(tmpFile, content, 0600); err != nil {
		return nil, fmt.Errorf("writing temp file: %w", err)
	}

	// "-" sends extracted text to stdout.
	output, err := p.runner.Run(ctx, "pdftotext", "-layout", tmpFile, "-")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: pdftotext failed: %w", domain.ErrCorruptDocument, name, err)
	}

	return parsers.Structure(name, string(output)), nil
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform-specific install guidance.
func InstallInstructions() string {
	return `pdftotext is required for PDF parsing.

  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}
