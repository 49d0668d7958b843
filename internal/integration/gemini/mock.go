package gemini

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const mockQuizJSON = `{
  "questions": [
    {
      "question": "What is this quiz generated from?",
      "options": ["Mock data", "A real document", "A video", "An image"],
      "correctAnswer": 0,
      "correctAnswerText": "Mock data"
    }
  ]
}`

// MockConnector is a canned-response stand-in for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) Close() error { return nil }

func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("prompt_length", len(prompt)))

	if looksLikeQuizPrompt(prompt) {
		return mockQuizJSON, nil
	}
	return "This is a mock answer based on the provided context.", nil
}

func (m *MockConnector) CompleteWithFile(ctx context.Context, path, mimeType, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion from file",
		zap.String("path", path),
		zap.String("mime_type", mimeType),
	)
	return mockQuizJSON, nil
}

// EmbedTexts returns deterministic pseudo-embeddings so retrieval stays
// stable across runs.
func (m *MockConnector) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, t := range texts {
		vectors = append(vectors, mockEmbedding(t))
	}
	return vectors, nil
}

func (m *MockConnector) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return mockEmbedding(text), nil
}

func mockEmbedding(text string) []float32 {
	const dims = 16

	v := make([]float32, dims)
	h := fnv.New32a()
	for i := 0; i < dims; i++ {
		fmt.Fprintf(h, "%s:%d", text, i)
		v[i] = float32(h.Sum32()%1000) / 1000
	}
	return v
}

func looksLikeQuizPrompt(prompt string) bool {
	return strings.Contains(prompt, "quiz generator")
}
