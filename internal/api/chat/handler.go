package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/pkg/logger"
	"github.com/majestic/ai-backend/internal/pkg/response"
	"github.com/majestic/ai-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase        ChatUsecase
	validator      *validator.Validator
	embeddingModel string
	llmModel       string
}

func NewHandler(usecase ChatUsecase, v *validator.Validator, embeddingModel, llmModel string) *Handler {
	return &Handler{
		usecase:        usecase,
		validator:      v,
		embeddingModel: embeddingModel,
		llmModel:       llmModel,
	}
}

// Chat handles POST /chat - answer a question with retrieval and memory
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "validation failed", err)
		return
	}

	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}

	ctx = logger.AddFields(ctx,
		zap.String("company_id", req.CompanyID),
		zap.String("conversation_id", req.ConversationID),
	)
	ctxzap.Info(ctx, "handling chat request", zap.Int("query_length", len(req.Query)))

	answer, err := h.usecase.Chat(ctx, &req)
	if err != nil {
		h.handleUsecaseError(w, r, err)
		return
	}

	response.Success(w, entity.ChatResponse{
		Answer:         answer,
		ConversationID: req.ConversationID,
		OK:             true,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

// Reset handles POST /chat/reset - clear a conversation's history
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Reset")

	var req entity.ResetChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	key, err := h.validator.ValidateReset(&req)
	if err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "validation failed", err)
		return
	}

	h.usecase.Reset(ctx, key)

	response.Success(w, entity.ResetChatResponse{
		OK:      true,
		Message: "Chat reset successfully",
	})
}

// Health handles GET /health - service status and model configuration
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.ChatHealthResponse{
		Status:           "ok",
		ActiveCompanies:  h.usecase.ActiveCompanies(),
		EmbeddingBackend: "Google Gemini",
		EmbeddingModel:   h.embeddingModel,
		LLMModel:         h.llmModel,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	response.JSON(w, status, entity.ChatErrorResponse{
		Error:  message,
		Detail: err.Error(),
		OK:     false,
	})
}

func (h *Handler) handleUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	ctxzap.Error(r.Context(), "chat request failed", zap.Error(err))

	if errors.Is(err, entity.ErrInvalidInput) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(w, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.respondError(w, http.StatusInternalServerError, "failed to generate answer", err)
}
