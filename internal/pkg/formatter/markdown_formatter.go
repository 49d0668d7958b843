package formatter

import (
	"bytes"
	"fmt"

	"github.com/majestic/ai-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(result *entity.QuizResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", baseTitle)

	for i, q := range result.Questions {
		fmt.Fprintf(&buf, "\n## %d. %s\n\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&buf, "- %s. %s\n", optionLabel(j), opt)
		}
		fmt.Fprintf(&buf, "\n**Answer:** %s. %s\n", optionLabel(q.CorrectAnswer), q.CorrectAnswerText)
	}
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
