package chat

import (
	"context"

	"github.com/majestic/ai-backend/internal/entity"
)

type ChatUsecase interface {
	Chat(ctx context.Context, req *entity.ChatRequest) (string, error)
	Reset(ctx context.Context, key string)
	ActiveCompanies() int
}
