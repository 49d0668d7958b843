package gemini

import (
	"context"
	"fmt"

	"github.com/majestic/ai-backend/internal/entity"
)

// DisabledConnector is used when no API credential is configured. The quiz
// service starts in this degraded state instead of refusing to boot; every
// generation attempt reports the missing configuration.
type DisabledConnector struct{}

func NewDisabledConnector() *DisabledConnector {
	return &DisabledConnector{}
}

func (d *DisabledConnector) Close() error { return nil }

func (d *DisabledConnector) Complete(ctx context.Context, prompt string) (string, error) {
	return "", d.err()
}

func (d *DisabledConnector) CompleteWithFile(ctx context.Context, path, mimeType, prompt string) (string, error) {
	return "", d.err()
}

func (d *DisabledConnector) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, d.err()
}

func (d *DisabledConnector) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return nil, d.err()
}

func (d *DisabledConnector) err() error {
	return fmt.Errorf("%w: set GOOGLE_API_KEY to enable generation", entity.ErrNotConfigured)
}
