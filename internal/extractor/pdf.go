// Package extractor pulls plain text out of local source files, used as the
// fallback path when the multimodal provider cannot process a PDF.
package extractor

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/majestic/ai-backend/internal/entity"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// PDFExtractor extracts embedded text from digital PDFs. Scanned PDFs with
// no text layer yield an extraction failure.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText reads the whole text layer of the PDF at path.
func (e *PDFExtractor) ExtractText(path string) (text string, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return "", fmt.Errorf("%w: PDF file %s", entity.ErrNotFound, path)
	}

	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", entity.ErrExtraction, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open PDF: %v", entity.ErrExtraction, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: read PDF text: %v", entity.ErrExtraction, err)
	}

	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: read PDF text: %v", entity.ErrExtraction, err)
	}

	text = CollapseWhitespace(string(b))
	if text == "" {
		return "", fmt.Errorf("%w: no text could be extracted from PDF %s", entity.ErrExtraction, path)
	}
	return text, nil
}

// CollapseWhitespace folds any whitespace run into a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
