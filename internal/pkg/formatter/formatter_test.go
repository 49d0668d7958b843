package formatter

import (
	"testing"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *entity.QuizResult {
	return &entity.QuizResult{Questions: []entity.QuizQuestion{
		{
			Question:          "What year did the first moon landing happen?",
			Options:           []string{"1969", "1972", "1961", "1958"},
			CorrectAnswer:     0,
			CorrectAnswerText: "1969",
		},
		{
			Question:          "Who was the mission commander?",
			Options:           []string{"Buzz Aldrin", "Neil Armstrong", "Michael Collins", "John Glenn"},
			CorrectAnswer:     1,
			CorrectAnswerText: "Neil Armstrong",
		},
	}}
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	for _, format := range []entity.ResultFormat{entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX} {
		f, err := factory.Create(format)
		require.NoError(t, err)
		require.NotNil(t, f)
	}

	_, err := factory.Create(entity.ResultFormat("xlsx"))
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(sampleQuiz())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Quiz")
	assert.Contains(t, text, "## 1. What year did the first moon landing happen?")
	assert.Contains(t, text, "- A. 1969")
	assert.Contains(t, text, "**Answer:** B. Neil Armstrong")
}

func TestPDFFormatterProducesDocument(t *testing.T) {
	out, err := NewPDFFormatter().Format(sampleQuiz())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDOCXFormatterProducesDocument(t *testing.T) {
	out, err := NewDOCXFormatter().Format(sampleQuiz())
	require.NoError(t, err)
	// A docx file is a zip archive.
	require.Greater(t, len(out), 4)
	assert.Equal(t, "PK", string(out[:2]))
}
