// Package legacy handles pre-OOXML Word (.doc) meeting records.
//
// Legacy .doc is a binary compound format; full fidelity needs external
// tooling. This parser extracts the readable text runs, which is enough
// for keyword analysis of plain meeting notes.
package legacy

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers"
)

// minRunLength filters out short binary noise that decodes to text.
const minRunLength = 4

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser extracts readable text runs from legacy .doc files.
type Parser struct{}

// New creates a new legacy Word parser.
func New() *Parser {
	return &Parser{}
}

// SupportedExtensions returns the extensions this parser handles.
func (p *Parser) SupportedExtensions() []string {
	return []string{".doc"}
}

// Parse extracts printable text from the binary content.
func (p *Parser) Parse(_ context.Context, content []byte, name string) (*domain.ParsedDocument, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrCorruptDocument, name)
	}

	text := extractRuns(content)
	if text == "" {
		return nil, fmt.Errorf("%w: %s holds no readable text", domain.ErrCorruptDocument, name)
	}

	return parsers.Structure(name, text), nil
}

// extractRuns collects printable character runs from binary content.
// Word stores body text as UTF-16LE, but plain exports are single-byte.
// Both decodings run and the one yielding more letters wins: the wrong
// decoding degrades into short noise runs that the filters drop.
func extractRuns(content []byte) string {
	utfRuns := extractUTF16Runs(content)
	asciiRuns := extractASCIIRuns(content)

	runs := utfRuns
	if countLetters(asciiRuns) > countLetters(utfRuns) {
		runs = asciiRuns
	}
	return strings.TrimSpace(strings.Join(runs, "\n"))
}

func countLetters(runs []string) int {
	total := 0
	for _, run := range runs {
		for _, r := range run {
			if unicode.IsLetter(r) {
				total++
			}
		}
	}
	return total
}

func extractUTF16Runs(content []byte) []string {
	var runs []string
	var current []uint16

	flush := func() {
		if len(current) >= minRunLength {
			decoded := strings.TrimSpace(string(utf16.Decode(current)))
			if decoded != "" && hasLetters(decoded) {
				runs = append(runs, decoded)
			}
		}
		current = current[:0]
	}

	for i := 0; i+1 < len(content); i += 2 {
		ch := uint16(content[i]) | uint16(content[i+1])<<8
		r := rune(ch)
		if unicode.IsPrint(r) || r == '\t' {
			current = append(current, ch)
		} else {
			flush()
		}
	}
	flush()
	return runs
}

func extractASCIIRuns(content []byte) []string {
	var runs []string
	var current []byte

	flush := func() {
		if len(current) >= minRunLength {
			decoded := strings.TrimSpace(string(current))
			if decoded != "" && hasLetters(decoded) {
				runs = append(runs, decoded)
			}
		}
		current = current[:0]
	}

	for _, b := range content {
		if b >= 0x20 && b < 0x7f || b == '\t' {
			current = append(current, b)
		} else {
			flush()
		}
	}
	flush()
	return runs
}

// hasLetters filters runs of pure punctuation or digits.
func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
