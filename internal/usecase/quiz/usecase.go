package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/pkg/quizrepair"
	"github.com/majestic/ai-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

// Usecase orchestrates quiz generation over heterogeneous sources: raw
// text, local documents via multimodal calls, and YouTube transcripts.
type Usecase struct {
	ai        AIConnector
	captions  CaptionFetcher
	extractor TextExtractor
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(
	ai AIConnector,
	captions CaptionFetcher,
	extractor TextExtractor,
	v *validator.Validator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		ai:        ai,
		captions:  captions,
		extractor: extractor,
		validator: v,
		logger:    logger,
	}
}

// GenerateFromText builds a quiz from raw text. The text is truncated to
// the prompt budget before being sent to the model.
func (uc *Usecase) GenerateFromText(ctx context.Context, text string, numQuestions int) (*entity.QuizResult, error) {
	if err := uc.validator.ValidateNumQuestions(numQuestions); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text content is empty", entity.ErrInvalidInput)
	}

	prompt := fmt.Sprintf(textPromptTemplate, numQuestions, truncate(text, maxContentLength))

	raw, err := uc.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return uc.parseQuiz(ctx, raw)
}

// GenerateFromFile builds a quiz from a local PDF or image via a multimodal
// model call. When the multimodal path fails for a PDF, the file is
// extracted locally and routed through the text path; a second failure
// reports both errors. Images have no fallback.
func (uc *Usecase) GenerateFromFile(ctx context.Context, path, mimeType string, source entity.QuizSource, numQuestions int) (*entity.QuizResult, error) {
	if err := uc.validator.ValidateNumQuestions(numQuestions); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(filePromptTemplate, numQuestions)

	raw, err := uc.ai.CompleteWithFile(ctx, path, mimeType, prompt)
	if err == nil {
		result, parseErr := uc.parseQuiz(ctx, raw)
		if parseErr == nil {
			return result, nil
		}
		err = parseErr
	}

	if source != entity.SourcePDF {
		return nil, err
	}

	ctxzap.Warn(ctx, "multimodal path failed, falling back to local pdf extraction", zap.Error(err))

	text, extractErr := uc.extractor.ExtractText(path)
	if extractErr != nil {
		return nil, fmt.Errorf("%w: generate quiz from file failed (%v) and fallback extraction failed (%v)",
			entity.ErrExtraction, err, extractErr)
	}

	result, fallbackErr := uc.GenerateFromText(ctx, text, numQuestions)
	if fallbackErr != nil {
		return nil, fmt.Errorf("generate quiz from file failed (%v) and fallback failed: %w", err, fallbackErr)
	}
	return result, nil
}

// GenerateFromYouTube builds a quiz from a video's caption transcript.
func (uc *Usecase) GenerateFromYouTube(ctx context.Context, url string, numQuestions int) (*entity.QuizResult, error) {
	if err := uc.validator.ValidateNumQuestions(numQuestions); err != nil {
		return nil, err
	}

	videoID := ExtractVideoID(url)
	if videoID == "" {
		return nil, fmt.Errorf("%w: invalid YouTube URL, could not extract video ID", entity.ErrInvalidInput)
	}

	ctxzap.Info(ctx, "extracting youtube transcript", zap.String("video_id", videoID))

	transcript, err := uc.captions.Transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return uc.GenerateFromText(ctx, transcript, numQuestions)
}

// parseQuiz extracts the first JSON object from a model response, requires
// a questions key, and repairs the loosely-typed payload into a QuizResult.
func (uc *Usecase) parseQuiz(ctx context.Context, response string) (*entity.QuizResult, error) {
	blob := firstJSONObject(response)
	if blob == "" {
		return nil, fmt.Errorf("%w: no valid JSON found in response: %s",
			entity.ErrGeneration, truncate(response, 200))
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON in response: %v", entity.ErrGeneration, err)
	}
	if _, ok := envelope["questions"]; !ok {
		return nil, fmt.Errorf("%w: response does not contain 'questions' key", entity.ErrGeneration)
	}

	var raw entity.RawQuiz
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("%w: unexpected questions shape: %v", entity.ErrGeneration, err)
	}

	result := quizrepair.Repair(raw)

	ctxzap.Info(ctx, "quiz generated", zap.Int("question_count", len(result.Questions)))
	return &result, nil
}
