package chat

import (
	"context"

	"github.com/majestic/ai-backend/internal/entity"
)

// AIConnector is the Gemini boundary the chat pipeline depends on:
// completion for answering and embeddings for retrieval.
type AIConnector interface {
	Complete(ctx context.Context, prompt string) (string, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// CorpusLoader resolves a tenant id to its ordered knowledge passages.
type CorpusLoader interface {
	Load(ctx context.Context, companyID string) ([]string, error)
}

// HistoryStore keeps bounded per-conversation turn history.
type HistoryStore interface {
	Append(key string, turn entity.Turn)
	Recent(key string, limit int) []entity.Turn
	Reset(key string)
	SweepExpired()
	Len() int
}
