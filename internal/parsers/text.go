package parsers

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// introSection collects paragraphs appearing before the first header.
const introSection = "intro"

var namePrefixPattern = regexp.MustCompile(`(?i)(Employee development plan|План развития сотрудника)`)

// sectionPatterns maps normalised section names to the header phrases
// that introduce them, in both Russian and English.
var sectionPatterns = []struct {
	name     string
	patterns []string
}{
	{"plans_before_review", []string{
		"plans before", "планы до ревью", "планируется",
		"probation period", "испытательный срок",
	}},
	{"performance_review", []string{
		"performance review", "годовое ревью", "annual review",
	}},
	{"quarterly_checkpoint", []string{
		"quarterly", "checkpoint", "чек-поинт", "квартальный",
	}},
	{"goals", []string{
		"goals for", "цели на", "targets", "objectives",
	}},
	{"feedback", []string{
		"feedback", "обратная связь", "что нравится", "what do you like",
	}},
	{"satisfaction", []string{
		"satisfaction", "удовлетворен", "отношение к компании",
	}},
	{"training", []string{
		"training", "обучение", "certification", "сертификация",
	}},
	{"location", []string{
		"location", "локация", "relocation", "релокация",
	}},
}

// ExtractEmployeeName derives the employee name from a document file name.
// Boilerplate phrases and separator dashes are stripped.
func ExtractEmployeeName(fileName string) string {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	name = namePrefixPattern.ReplaceAllString(name, "")
	name = strings.Trim(name, " -_")
	return strings.TrimSpace(name)
}

// Structure assembles a ParsedDocument from extracted plain text.
// Paragraphs are grouped under detected section headers; text before
// the first header lands in the intro section.
func Structure(fileName, text string) *domain.ParsedDocument {
	sections := make(map[string][]string)
	current := introSection

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if header := detectSectionHeader(line); header != "" {
			current = header
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
			continue
		}
		sections[current] = append(sections[current], line)
	}

	return &domain.ParsedDocument{
		EmployeeName: ExtractEmployeeName(fileName),
		Text:         text,
		Sections:     sections,
		WordCount:    len(strings.Fields(text)),
	}
}

// detectSectionHeader returns the normalised section name a line opens,
// or empty when the line is regular content.
func detectSectionHeader(line string) string {
	lower := strings.ToLower(line)
	for _, section := range sectionPatterns {
		for _, pattern := range section.patterns {
			if strings.Contains(lower, pattern) {
				return section.name
			}
		}
	}
	return ""
}
