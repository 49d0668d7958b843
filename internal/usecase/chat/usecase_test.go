package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAI struct {
	prompts     []string
	answer      string
	completeErr error
}

func (f *fakeAI) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.answer, nil
}

func (f *fakeAI) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = fakeVector(text)
	}
	return out, nil
}

func (f *fakeAI) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return fakeVector(text), nil
}

// fakeVector makes passages sharing words with the query score higher.
func fakeVector(text string) []float32 {
	v := make([]float32, 8)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		v[len(word)%8]++
	}
	return v
}

type fakeCorpus struct {
	passages map[string][]string
	loads    int
}

func (f *fakeCorpus) Load(_ context.Context, companyID string) ([]string, error) {
	f.loads++
	p, ok := f.passages[companyID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return p, nil
}

func newTestUsecase(ai *fakeAI, corpus *fakeCorpus) *Usecase {
	store := history.New(20, time.Hour)
	return NewUsecase(corpus, ai, store, 3, zap.NewNop())
}

func acmeCorpus() *fakeCorpus {
	return &fakeCorpus{passages: map[string][]string{
		"acme": {
			"We are open Monday to Friday from nine to five.",
			"Our office is located in Springfield.",
			"Support is reachable at support@acme.example.",
		},
	}}
}

func TestChatIncludesRetrievedContext(t *testing.T) {
	ai := &fakeAI{answer: "We are open nine to five."}
	uc := newTestUsecase(ai, acmeCorpus())

	answer, err := uc.Chat(context.Background(), &entity.ChatRequest{
		Query:     "What are your hours?",
		CompanyID: "acme",
		UserID:    "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "We are open nine to five.", answer)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Context:")
	assert.Contains(t, ai.prompts[0], "Question: What are your hours?")
	assert.Contains(t, ai.prompts[0], "open Monday to Friday")
}

func TestChatSharedCompanyKeyCarriesHistory(t *testing.T) {
	ai := &fakeAI{answer: "Nine to five, Monday through Friday."}
	uc := newTestUsecase(ai, acmeCorpus())

	// No user_id on either call: both must share the "acme" history key.
	first := &entity.ChatRequest{Query: "What are your hours?", CompanyID: "acme"}
	second := &entity.ChatRequest{Query: "And where are you located?", CompanyID: "acme"}

	_, err := uc.Chat(context.Background(), first)
	require.NoError(t, err)
	_, err = uc.Chat(context.Background(), second)
	require.NoError(t, err)

	require.Len(t, ai.prompts, 2)
	assert.Contains(t, ai.prompts[1], "Human: What are your hours?")
	assert.Contains(t, ai.prompts[1], "Assistant: Nine to five, Monday through Friday.")
}

func TestChatSeparateUsersDoNotShareHistory(t *testing.T) {
	ai := &fakeAI{answer: "Hello."}
	uc := newTestUsecase(ai, acmeCorpus())

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{
		Query: "What are your hours?", CompanyID: "acme", UserID: "u1",
	})
	require.NoError(t, err)
	_, err = uc.Chat(context.Background(), &entity.ChatRequest{
		Query: "Where are you located?", CompanyID: "acme", UserID: "u2",
	})
	require.NoError(t, err)

	require.Len(t, ai.prompts, 2)
	assert.NotContains(t, ai.prompts[1], "Human: What are your hours?")
}

func TestChatFailedGenerationLeavesHumanTurn(t *testing.T) {
	ai := &fakeAI{completeErr: errors.New("model unavailable")}
	store := history.New(20, time.Hour)
	uc := NewUsecase(acmeCorpus(), ai, store, 3, zap.NewNop())

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{
		Query: "What are your hours?", CompanyID: "acme", UserID: "u1",
	})
	require.Error(t, err)

	turns := store.Recent("u1", 10)
	require.Len(t, turns, 1)
	assert.Equal(t, entity.RoleHuman, turns[0].Role)
}

func TestChatCorpusLoadedOncePerTenant(t *testing.T) {
	ai := &fakeAI{answer: "ok"}
	corpus := acmeCorpus()
	uc := newTestUsecase(ai, corpus)

	for i := 0; i < 3; i++ {
		_, err := uc.Chat(context.Background(), &entity.ChatRequest{
			Query: "What are your hours?", CompanyID: "acme", UserID: "u1",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, corpus.loads)
	assert.Equal(t, 1, uc.ActiveCompanies())
}

func TestChatUnknownCompany(t *testing.T) {
	ai := &fakeAI{answer: "ok"}
	uc := newTestUsecase(ai, acmeCorpus())

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{
		Query: "hi", CompanyID: "ghost", UserID: "u1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestResetClearsHistory(t *testing.T) {
	ai := &fakeAI{answer: "ok"}
	store := history.New(20, time.Hour)
	uc := NewUsecase(acmeCorpus(), ai, store, 3, zap.NewNop())

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{
		Query: "hi", CompanyID: "acme", UserID: "u1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, store.Recent("u1", 10))

	uc.Reset(context.Background(), "u1")
	assert.Empty(t, store.Recent("u1", 10))
}

func TestRenderHistory(t *testing.T) {
	assert.Equal(t, "", renderHistory(nil))

	got := renderHistory([]entity.Turn{
		{Role: entity.RoleHuman, Content: "hi"},
		{Role: entity.RoleAssistant, Content: "hello"},
	})
	assert.Equal(t, "Human: hi\nAssistant: hello", got)
}
