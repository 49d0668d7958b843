package formatter

import (
	"fmt"

	"github.com/majestic/ai-backend/internal/entity"
)

const baseTitle = "Quiz"

// Formatter renders a generated quiz into a downloadable document.
type Formatter interface {
	Format(result *entity.QuizResult) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format: %s", entity.ErrInvalidInput, format)
	}
}

// optionLabel maps an option index to its display letter (A-D).
func optionLabel(i int) string {
	return string(rune('A' + i))
}
