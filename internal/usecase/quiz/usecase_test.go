package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validQuizJSON = `{
  "questions": [
    {
      "question": "What is discussed?",
      "options": ["History", "Cooking", "Sports", "Music"],
      "correctAnswer": 0,
      "correctAnswerText": "History"
    }
  ]
}`

type fakeConnector struct {
	completeCalls int
	fileCalls     int
	response      string
	fileResponse  string
	completeErr   error
	fileErr       error
	lastPrompt    string
}

func (f *fakeConnector) Complete(_ context.Context, prompt string) (string, error) {
	f.completeCalls++
	f.lastPrompt = prompt
	return f.response, f.completeErr
}

func (f *fakeConnector) CompleteWithFile(_ context.Context, _, _, _ string) (string, error) {
	f.fileCalls++
	return f.fileResponse, f.fileErr
}

type fakeCaptions struct {
	calls      int
	transcript string
	err        error
}

func (f *fakeCaptions) Transcript(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.transcript, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(_ string) (string, error) {
	return f.text, f.err
}

func newTestUsecase(ai *fakeConnector, captions *fakeCaptions, ex *fakeExtractor) *Usecase {
	if captions == nil {
		captions = &fakeCaptions{}
	}
	if ex == nil {
		ex = &fakeExtractor{}
	}
	return NewUsecase(ai, captions, ex, validator.New(), zap.NewNop())
}

func TestGenerateFromText(t *testing.T) {
	ai := &fakeConnector{response: "Sure, here is the quiz:\n" + validQuizJSON + "\nEnjoy!"}
	uc := newTestUsecase(ai, nil, nil)

	result, err := uc.GenerateFromText(context.Background(), "Some study material.", 1)
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "What is discussed?", result.Questions[0].Question)
	assert.Equal(t, "History", result.Questions[0].CorrectAnswerText)
}

func TestGenerateFromTextTruncatesLongContent(t *testing.T) {
	ai := &fakeConnector{response: validQuizJSON}
	uc := newTestUsecase(ai, nil, nil)

	long := strings.Repeat("a", 20000)
	_, err := uc.GenerateFromText(context.Background(), long, 5)
	require.NoError(t, err)

	assert.Less(t, len(ai.lastPrompt), 10000)
}

func TestGenerateRejectsBadQuestionCountBeforeAnyCall(t *testing.T) {
	for _, n := range []int{0, -1, 21, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ai := &fakeConnector{response: validQuizJSON}
			captions := &fakeCaptions{transcript: "some transcript"}
			uc := newTestUsecase(ai, captions, nil)

			_, err := uc.GenerateFromText(context.Background(), "text", n)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)

			_, err = uc.GenerateFromYouTube(context.Background(), "https://youtu.be/dQw4w9WgXcQ", n)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)

			_, err = uc.GenerateFromFile(context.Background(), "/tmp/x.pdf", "application/pdf", entity.SourcePDF, n)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)

			assert.Zero(t, ai.completeCalls)
			assert.Zero(t, ai.fileCalls)
			assert.Zero(t, captions.calls)
		})
	}
}

func TestGenerateFromTextEmpty(t *testing.T) {
	ai := &fakeConnector{response: validQuizJSON}
	uc := newTestUsecase(ai, nil, nil)

	_, err := uc.GenerateFromText(context.Background(), "   ", 5)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Zero(t, ai.completeCalls)
}

func TestGenerateFromTextNoJSONInResponse(t *testing.T) {
	ai := &fakeConnector{response: "I cannot generate a quiz from that."}
	uc := newTestUsecase(ai, nil, nil)

	_, err := uc.GenerateFromText(context.Background(), "text", 5)
	assert.ErrorIs(t, err, entity.ErrGeneration)
}

func TestGenerateFromTextMissingQuestionsKey(t *testing.T) {
	ai := &fakeConnector{response: `{"answers": []}`}
	uc := newTestUsecase(ai, nil, nil)

	_, err := uc.GenerateFromText(context.Background(), "text", 5)
	assert.ErrorIs(t, err, entity.ErrGeneration)
	assert.Contains(t, err.Error(), "questions")
}

func TestGenerateFromFileMultimodalSuccess(t *testing.T) {
	ai := &fakeConnector{fileResponse: validQuizJSON}
	uc := newTestUsecase(ai, nil, nil)

	result, err := uc.GenerateFromFile(context.Background(), "/tmp/doc.pdf", "application/pdf", entity.SourcePDF, 1)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 1)
	assert.Equal(t, 1, ai.fileCalls)
	assert.Zero(t, ai.completeCalls)
}

func TestGenerateFromFilePDFFallsBackToExtraction(t *testing.T) {
	ai := &fakeConnector{
		fileErr:  errors.New("multimodal unavailable"),
		response: validQuizJSON,
	}
	ex := &fakeExtractor{text: "Extracted document text."}
	uc := newTestUsecase(ai, nil, ex)

	result, err := uc.GenerateFromFile(context.Background(), "/tmp/doc.pdf", "application/pdf", entity.SourcePDF, 1)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 1)
	assert.Equal(t, 1, ai.fileCalls)
	assert.Equal(t, 1, ai.completeCalls)
}

func TestGenerateFromFilePDFFallbackAlsoFailsCombinesErrors(t *testing.T) {
	ai := &fakeConnector{fileErr: errors.New("multimodal unavailable")}
	ex := &fakeExtractor{err: errors.New("corrupt pdf")}
	uc := newTestUsecase(ai, nil, ex)

	_, err := uc.GenerateFromFile(context.Background(), "/tmp/doc.pdf", "application/pdf", entity.SourcePDF, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrExtraction)
	assert.Contains(t, err.Error(), "multimodal unavailable")
	assert.Contains(t, err.Error(), "corrupt pdf")
}

func TestGenerateFromFileImageHasNoFallback(t *testing.T) {
	ai := &fakeConnector{fileErr: errors.New("multimodal unavailable")}
	ex := &fakeExtractor{text: "should not be used"}
	uc := newTestUsecase(ai, nil, ex)

	_, err := uc.GenerateFromFile(context.Background(), "/tmp/pic.png", "image/png", entity.SourceImage, 1)
	require.Error(t, err)
	assert.Zero(t, ai.completeCalls)
}

func TestGenerateFromYouTube(t *testing.T) {
	ai := &fakeConnector{response: validQuizJSON}
	captions := &fakeCaptions{transcript: "A transcript about the history of computing, long enough to be useful."}
	uc := newTestUsecase(ai, captions, nil)

	result, err := uc.GenerateFromYouTube(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 1)
	assert.Equal(t, 1, captions.calls)
	assert.Contains(t, ai.lastPrompt, "history of computing")
}

func TestGenerateFromYouTubeInvalidURL(t *testing.T) {
	ai := &fakeConnector{response: validQuizJSON}
	captions := &fakeCaptions{transcript: "transcript"}
	uc := newTestUsecase(ai, captions, nil)

	_, err := uc.GenerateFromYouTube(context.Background(), "https://www.youtube.com/", 5)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Zero(t, captions.calls)
}

func TestGenerateFromYouTubeNoCaptions(t *testing.T) {
	ai := &fakeConnector{response: validQuizJSON}
	captions := &fakeCaptions{err: fmt.Errorf("%w: enable captions", entity.ErrNoCaptions)}
	uc := newTestUsecase(ai, captions, nil)

	_, err := uc.GenerateFromYouTube(context.Background(), "https://youtu.be/dQw4w9WgXcQ", 5)
	assert.ErrorIs(t, err, entity.ErrNoCaptions)
	assert.Zero(t, ai.completeCalls)
}
