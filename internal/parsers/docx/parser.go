// Package docx parses Word OOXML meeting records.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser extracts text from DOCX files.
type Parser struct{}

// New creates a new DOCX parser.
func New() *Parser {
	return &Parser{}
}

// SupportedExtensions returns the extensions this parser handles.
func (p *Parser) SupportedExtensions() []string {
	return []string{".docx"}
}

// Parse extracts text content from a DOCX archive.
func (p *Parser) Parse(_ context.Context, content []byte, name string) (*domain.ParsedDocument, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid docx archive", domain.ErrCorruptDocument, name)
	}

	text, err := extractDocumentText(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorruptDocument, name, err)
	}

	return parsers.Structure(name, text), nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", err
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}

		return parseDocumentXML(content), nil
	}
	return "", fmt.Errorf("word/document.xml missing")
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}
