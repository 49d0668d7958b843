package chat

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/retrieval"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Usecase implements the retrieval-augmented chat flow: a process-wide
// registry of per-tenant pipelines plus the conversation history store.
type Usecase struct {
	corpus    CorpusLoader
	ai        AIConnector
	history   HistoryStore
	pipelines *cache.Cache
	topK      int
	logger    *zap.Logger
}

func NewUsecase(
	corpus CorpusLoader,
	ai AIConnector,
	history HistoryStore,
	topK int,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		corpus:    corpus,
		ai:        ai,
		history:   history,
		pipelines: cache.New(cache.NoExpiration, 0),
		topK:      topK,
		logger:    logger,
	}
}

// Chat answers a question for a tenant, reading and recording conversation
// history under the request's conversation key. The human turn is recorded
// before generation; the assistant turn only after a successful one, so a
// failed generation leaves a dangling unanswered human turn behind.
func (uc *Usecase) Chat(ctx context.Context, req *entity.ChatRequest) (string, error) {
	uc.history.SweepExpired()

	p, err := uc.pipelineFor(ctx, req.CompanyID)
	if err != nil {
		return "", err
	}

	key := req.ConversationKey()
	if req.UserID == "" {
		ctxzap.Warn(ctx, "user_id not provided; sharing history under company_id",
			zap.String("company_id", req.CompanyID),
		)
	}

	uc.history.Append(key, entity.Turn{Role: entity.RoleHuman, Content: req.Query})

	answer, err := p.answer(ctx, req.Query, key)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}

	uc.history.Append(key, entity.Turn{Role: entity.RoleAssistant, Content: answer})
	return answer, nil
}

// Reset deletes the conversation history under the given key.
func (uc *Usecase) Reset(ctx context.Context, key string) {
	uc.history.Reset(key)
	ctxzap.Info(ctx, "conversation reset", zap.String("conversation_key", key))
}

// ActiveCompanies reports how many tenant pipelines are initialized.
func (uc *Usecase) ActiveCompanies() int {
	return uc.pipelines.ItemCount()
}

// pipelineFor returns the tenant's cached pipeline, building it on first
// use. The corpus is loaded and indexed exactly once per process lifetime;
// a tenant whose knowledge base changes needs a restart to pick it up.
// Concurrent first requests may build the pipeline twice; construction is
// idempotent and the last write wins.
func (uc *Usecase) pipelineFor(ctx context.Context, companyID string) (*pipeline, error) {
	if v, ok := uc.pipelines.Get(companyID); ok {
		return v.(*pipeline), nil
	}

	ctxzap.Info(ctx, "initializing chatbot pipeline", zap.String("company_id", companyID))

	passages, err := uc.corpus.Load(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("load knowledge corpus: %w", err)
	}

	index, err := retrieval.BuildIndex(ctx, uc.ai, passages)
	if err != nil {
		return nil, fmt.Errorf("build retrieval index: %w", err)
	}

	p := &pipeline{
		index:   index,
		ai:      uc.ai,
		history: uc.history,
		topK:    uc.topK,
	}
	uc.pipelines.SetDefault(companyID, p)

	ctxzap.Info(ctx, "chatbot pipeline ready",
		zap.String("company_id", companyID),
		zap.Int("passage_count", index.Size()),
	)
	return p, nil
}
