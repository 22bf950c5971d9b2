package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmployeeName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{
			name:     "plain name",
			fileName: "Иванов Иван.docx",
			expected: "Иванов Иван",
		},
		{
			name:     "english boilerplate prefix",
			fileName: "Employee development plan - Petrov Petr.docx",
			expected: "Petrov Petr",
		},
		{
			name:     "russian boilerplate prefix",
			fileName: "План развития сотрудника - Сидорова Анна.pdf",
			expected: "Сидорова Анна",
		},
		{
			name:     "trailing dash",
			fileName: "Иванов Иван -.doc",
			expected: "Иванов Иван",
		},
		{
			name:     "underscores",
			fileName: "_Smith John_.docx",
			expected: "Smith John",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmployeeName(tt.fileName))
		})
	}
}

func TestStructure_Sections(t *testing.T) {
	text := "Общие сведения о сотруднике\n" +
		"Цели на квартал\n" +
		"Выучить Go\n" +
		"Сдать сертификацию\n" +
		"Обратная связь\n" +
		"Встреча прошла хорошо\n"

	doc := Structure("Иванов Иван.docx", text)

	require.NotNil(t, doc)
	assert.Equal(t, "Иванов Иван", doc.EmployeeName)
	assert.Equal(t, []string{"Общие сведения о сотруднике"}, doc.Sections["intro"])
	assert.Equal(t, []string{"Выучить Go", "Сдать сертификацию"}, doc.Sections["goals"])
	assert.Equal(t, []string{"Встреча прошла хорошо"}, doc.Sections["feedback"])
	assert.Equal(t, 16, doc.WordCount)
}

func TestStructure_SectionHeaderLanguages(t *testing.T) {
	tests := []struct {
		line    string
		section string
	}{
		{"Goals for Q3", "goals"},
		{"Цели на 3 квартал", "goals"},
		{"Performance Review 2026", "performance_review"},
		{"Годовое ревью", "performance_review"},
		{"Обучение и сертификация", "training"},
		{"Релокация", "location"},
		{"regular content line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.section, detectSectionHeader(tt.line))
		})
	}
}

func TestStructure_EmptyText(t *testing.T) {
	doc := Structure("Иванов.docx", "")

	require.NotNil(t, doc)
	assert.Zero(t, doc.WordCount)
	assert.Empty(t, doc.Sections["intro"])
}
