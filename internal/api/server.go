package api

import (
	"net/http"
	"time"

	chatapi "github.com/majestic/ai-backend/internal/api/chat"
	"github.com/majestic/ai-backend/internal/api/middleware"
	quizapi "github.com/majestic/ai-backend/internal/api/quiz"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupChatRouter creates and configures the chatbot HTTP router
func SetupChatRouter(chatHandler *chatapi.Handler, logger *zap.Logger) http.Handler {
	r := newRouter(logger, 60*time.Second)

	// Browsers request this alongside API calls; answer quietly.
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	chatapi.RegisterRoutes(r, chatHandler)

	return r
}

// SetupQuizRouter creates and configures the quiz generator HTTP router
func SetupQuizRouter(quizHandler *quizapi.Handler, logger *zap.Logger) http.Handler {
	// Quiz requests can wait on provider-side file processing for minutes.
	r := newRouter(logger, 6*time.Minute)

	quizapi.RegisterRoutes(r, quizHandler)

	return r
}

func newRouter(logger *zap.Logger, timeout time.Duration) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)        // Recover from panics
	r.Use(chimiddleware.RequestID)        // Add request ID
	r.Use(middleware.Logger(logger))      // Log requests
	r.Use(middleware.CORS)                // Handle CORS
	r.Use(chimiddleware.Timeout(timeout)) // Request timeout

	return r
}
