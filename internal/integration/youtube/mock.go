package youtube

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a fixed transcript for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) Transcript(ctx context.Context, videoID string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] extracting transcript", zap.String("video_id", videoID))

	return strings.TrimSpace(`
This is a mock transcript of a YouTube video used for local development.
It talks about the history of computing, from mechanical calculators to
modern distributed systems, and is long enough to pass the usable-text
threshold.`), nil
}
