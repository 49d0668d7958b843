package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/majestic/ai-backend/internal/pkg/retry"
)

// Config holds the application configuration shared by both services.
type Config struct {
	// Server configuration
	ChatServerAddr string `env:"CHAT_SERVER_ADDR" envDefault:":8002"`
	QuizServerAddr string `env:"QUIZ_SERVER_ADDR" envDefault:":8001"`

	// AI provider configuration
	GoogleAPIKey   string  `env:"GOOGLE_API_KEY"`
	GeminiModel    string  `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	EmbeddingModel string  `env:"GEMINI_EMBEDDING_MODEL" envDefault:"models/text-embedding-004"`
	Temperature    float32 `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`

	// Knowledge base configuration
	KnowledgeBasePath string `env:"KNOWLEDGE_BASE_PATH" envDefault:"knowledge_base.csv"`
	RetrievalTopK     int    `env:"RETRIEVAL_TOP_K" envDefault:"3"`

	// Conversation history configuration
	MaxHistoryMessages int `env:"MAX_HISTORY_MESSAGES" envDefault:"20"`
	MaxHistoryAgeHours int `env:"MAX_HISTORY_AGE_HOURS" envDefault:"24"`

	// Gemini file-activation polling (large uploads)
	FilePoll pkgRetry.RetryConfig `envPrefix:"FILE_POLL_"`

	// YouTube caption extraction
	YouTubeCfg YouTubeConnectorConfig `envPrefix:"YOUTUBE_"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type YouTubeConnectorConfig struct {
	HTTPClientConfig
	PlayerEndpoint string `env:"PLAYER_ENDPOINT" envDefault:"/youtubei/v1/player"`
	ClientName     string `env:"CLIENT_NAME" envDefault:"ANDROID"`
	ClientVersion  string `env:"CLIENT_VERSION" envDefault:"20.10.38"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"15s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://www.youtube.com"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.MaxHistoryMessages < 1 {
		return fmt.Errorf("MAX_HISTORY_MESSAGES must be positive, got %d", cfg.MaxHistoryMessages)
	}
	if cfg.MaxHistoryAgeHours < 1 {
		return fmt.Errorf("MAX_HISTORY_AGE_HOURS must be positive, got %d", cfg.MaxHistoryAgeHours)
	}
	if cfg.RetrievalTopK < 1 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be positive, got %d", cfg.RetrievalTopK)
	}
	if cfg.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
