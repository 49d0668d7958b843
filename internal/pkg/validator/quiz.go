package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/majestic/ai-backend/internal/entity"
)

const (
	minQuestions     = 1
	maxQuestions     = 20
	defaultQuestions = 5
)

// ParseNumQuestions parses the numQuestions field of either request form.
// An empty value falls back to the default of 5.
func (v *Validator) ParseNumQuestions(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultQuestions, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: numQuestions must be a valid integer", entity.ErrInvalidInput)
	}

	if err := v.ValidateNumQuestions(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateNumQuestions enforces the [1,20] question count range. Called
// before any external provider call is made.
func (v *Validator) ValidateNumQuestions(n int) error {
	if n < minQuestions || n > maxQuestions {
		return fmt.Errorf("%w: numQuestions must be between %d and %d",
			entity.ErrInvalidInput, minQuestions, maxQuestions)
	}
	return nil
}

// ValidateFormat parses the optional result format field.
func (v *Validator) ValidateFormat(raw string) (entity.ResultFormat, error) {
	switch entity.ResultFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", entity.FormatJSON:
		return entity.FormatJSON, nil
	case entity.FormatMarkdown:
		return entity.FormatMarkdown, nil
	case entity.FormatPDF:
		return entity.FormatPDF, nil
	case entity.FormatDOCX:
		return entity.FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidInput, raw)
	}
}
