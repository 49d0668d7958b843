package builder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/majestic/ai-backend/internal/api"
	chatapi "github.com/majestic/ai-backend/internal/api/chat"
	quizapi "github.com/majestic/ai-backend/internal/api/quiz"
	"github.com/majestic/ai-backend/internal/config"
	"github.com/majestic/ai-backend/internal/extractor"
	"github.com/majestic/ai-backend/internal/history"
	"github.com/majestic/ai-backend/internal/integration/gemini"
	"github.com/majestic/ai-backend/internal/integration/youtube"
	"github.com/majestic/ai-backend/internal/knowledge"
	"github.com/majestic/ai-backend/internal/pkg/formatter"
	"github.com/majestic/ai-backend/internal/pkg/logger"
	"github.com/majestic/ai-backend/internal/pkg/validator"
	chatuc "github.com/majestic/ai-backend/internal/usecase/chat"
	quizuc "github.com/majestic/ai-backend/internal/usecase/quiz"
	"go.uber.org/zap"
)

// aiConnector is the full Gemini surface shared by both services.
type aiConnector interface {
	chatuc.AIConnector
	quizuc.AIConnector
	io.Closer
}

// BuildChatbot assembles the chatbot service. The AI credential is
// mandatory here: without embeddings the service cannot answer anything.
func BuildChatbot() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building chatbot service",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ChatServerAddr),
	)

	ai, err := buildAIConnector(ctx, cfg, log, false)
	if err != nil {
		return nil, err
	}

	// Initialize shared state
	store := history.New(cfg.MaxHistoryMessages, time.Duration(cfg.MaxHistoryAgeHours)*time.Hour)
	corpus := knowledge.NewCSVLoader(cfg.KnowledgeBasePath, log)
	log.Info("History store and knowledge loader initialized")

	v := validator.New()

	// Initialize use case
	chatUC := chatuc.NewUsecase(corpus, ai, store, cfg.RetrievalTopK, log)
	log.Info("Use cases initialized")

	// Setup API handler and router
	chatHandler := chatapi.NewHandler(chatUC, v, cfg.EmbeddingModel, cfg.GeminiModel)
	router := api.SetupChatRouter(chatHandler, log)
	log.Info("HTTP router configured")

	return &App{
		server:  newServer(cfg.ChatServerAddr, router, 60*time.Second),
		logger:  log,
		closers: []io.Closer{ai},
	}, nil
}

// BuildQuiz assembles the quiz service. A missing AI credential degrades
// generation instead of failing startup, so health checks keep working.
func BuildQuiz() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building quiz service",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.QuizServerAddr),
	)

	ai, err := buildAIConnector(ctx, cfg, log, true)
	if err != nil {
		return nil, err
	}

	// Initialize extraction connectors
	var captions quizuc.CaptionFetcher
	if cfg.EnableMocks {
		captions = youtube.NewMockConnector(log)
	} else {
		captions = youtube.NewConnector(cfg.YouTubeCfg, log)
	}
	pdfExtractor := extractor.NewPDFExtractor()
	log.Info("Extraction connectors initialized")

	v := validator.New()

	// Initialize use case
	quizUC := quizuc.NewUsecase(ai, captions, pdfExtractor, v, log)
	log.Info("Use cases initialized")

	// Setup API handler and router
	quizHandler := quizapi.NewHandler(quizUC, v, formatter.NewFactory(), cfg.MaxUploadSize)
	router := api.SetupQuizRouter(quizHandler, log)
	log.Info("HTTP router configured")

	// Large uploads can spend minutes in provider-side file processing.
	return &App{
		server:  newServer(cfg.QuizServerAddr, router, cfg.FilePoll.Timeout+60*time.Second),
		logger:  log,
		closers: []io.Closer{ai},
	}, nil
}

// buildAIConnector picks the Gemini connector variant: mock for local
// development, disabled when no key is configured and degradation is
// allowed, real otherwise.
func buildAIConnector(ctx context.Context, cfg *config.Config, log *zap.Logger, allowDegraded bool) (aiConnector, error) {
	if cfg.EnableMocks {
		log.Info("Using mock AI connector")
		return gemini.NewMockConnector(log), nil
	}

	if cfg.GoogleAPIKey == "" && allowDegraded {
		log.Warn("GOOGLE_API_KEY not set, AI generation is disabled")
		return gemini.NewDisabledConnector(), nil
	}

	log.Info("Using Gemini connector",
		zap.String("model", cfg.GeminiModel),
		zap.String("embedding_model", cfg.EmbeddingModel),
	)
	return gemini.NewConnector(ctx, cfg, log)
}

func newServer(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
}
