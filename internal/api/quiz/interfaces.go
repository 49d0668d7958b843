package quiz

import (
	"context"

	"github.com/majestic/ai-backend/internal/entity"
)

type QuizUsecase interface {
	GenerateFromText(ctx context.Context, text string, numQuestions int) (*entity.QuizResult, error)
	GenerateFromFile(ctx context.Context, path, mimeType string, source entity.QuizSource, numQuestions int) (*entity.QuizResult, error)
	GenerateFromYouTube(ctx context.Context, url string, numQuestions int) (*entity.QuizResult, error)
}
