package gemini

import (
	"context"
	"fmt"
	"os"

	"github.com/avast/retry-go/v4"
	"github.com/google/generative-ai-go/genai"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/config"
	"github.com/majestic/ai-backend/internal/entity"
	pkgRetry "github.com/majestic/ai-backend/internal/pkg/retry"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Files up to this size are sent inline with the prompt; larger files go
// through the upload-and-poll path.
const inlineFileLimit = 8 * 1024 * 1024

// Connector wraps the Gemini API: text completion, multimodal completion
// over local files, and embeddings.
type Connector struct {
	client         *genai.Client
	model          string
	embeddingModel string
	temperature    float32
	pollCfg        pkgRetry.RetryConfig
	logger         *zap.Logger
}

func NewConnector(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Connector, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", entity.ErrNotConfigured)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GoogleAPIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Connector{
		client:         client,
		model:          cfg.GeminiModel,
		embeddingModel: cfg.EmbeddingModel,
		temperature:    cfg.Temperature,
		pollCfg:        cfg.FilePoll,
		logger:         logger,
	}, nil
}

func (c *Connector) Close() error {
	return c.client.Close()
}

// Complete sends a text prompt and returns the response text verbatim.
func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Debug(ctx, "generating completion", zap.Int("prompt_length", len(prompt)))

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: generate content: %v", entity.ErrUpstream, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	ctxzap.Debug(ctx, "completion generated", zap.Int("response_length", len(text)))
	return text, nil
}

// CompleteWithFile sends the prompt together with the file at path. Small
// files are inlined; large ones are uploaded and polled until the provider
// reports them active.
func (c *Connector) CompleteWithFile(ctx context.Context, path, mimeType, prompt string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: file %s", entity.ErrNotFound, path)
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	var filePart genai.Part
	if info.Size() <= inlineFileLimit {
		ctxzap.Info(ctx, "sending file inline", zap.Int64("size_bytes", info.Size()))

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		filePart = genai.Blob{MIMEType: mimeType, Data: data}
	} else {
		ctxzap.Info(ctx, "uploading file", zap.Int64("size_bytes", info.Size()), zap.String("mime_type", mimeType))

		uploaded, err := c.uploadAndWait(ctx, path, mimeType)
		if err != nil {
			return "", err
		}
		filePart = genai.FileData{MIMEType: uploaded.MIMEType, URI: uploaded.URI}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt), filePart)
	if err != nil {
		return "", fmt.Errorf("%w: generate content from file: %v", entity.ErrUpstream, err)
	}
	return responseText(resp)
}

// uploadAndWait uploads the file and polls until it becomes active, fails,
// or the poll budget runs out.
func (c *Connector) uploadAndWait(ctx context.Context, path, mimeType string) (*genai.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	uploaded, err := c.client.UploadFile(ctx, "", f, &genai.UploadFileOptions{MIMEType: mimeType})
	if err != nil {
		return nil, fmt.Errorf("%w: upload file: %v", entity.ErrUpstream, err)
	}

	pollCtx, cancel := context.WithTimeout(ctx, c.pollCfg.Timeout)
	defer cancel()

	var active *genai.File
	err = retry.Do(func() error {
		current, err := c.client.GetFile(pollCtx, uploaded.Name)
		if err != nil {
			return fmt.Errorf("poll file state: %w", err)
		}

		switch current.State {
		case genai.FileStateActive:
			active = current
			return nil
		case genai.FileStateFailed:
			return retry.Unrecoverable(fmt.Errorf("%w: file processing failed on server", entity.ErrUpstream))
		default:
			return fmt.Errorf("file state %v", current.State)
		}
	}, append(c.pollCfg.ToRetryOptions(), retry.Context(pollCtx))...)

	if err != nil {
		if pollCtx.Err() != nil {
			return nil, fmt.Errorf("%w: file processing timed out", entity.ErrUpstream)
		}
		return nil, err
	}

	ctxzap.Info(ctx, "file active", zap.String("file_uri", active.URI))
	return active, nil
}

// EmbedTexts embeds a batch of corpus passages.
func (c *Connector) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)

	batch := em.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: batch embed: %v", entity.ErrUpstream, err)
	}

	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, e := range resp.Embeddings {
		vectors = append(vectors, e.Values)
	}
	return vectors, nil
}

// EmbedQuery embeds a single query string.
func (c *Connector) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: embed content: %v", entity.ErrUpstream, err)
	}
	return resp.Embedding.Values, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty completion response", entity.ErrUpstream)
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out += string(t)
		}
	}
	if out == "" {
		return "", fmt.Errorf("%w: completion response contains no text", entity.ErrUpstream)
	}
	return out, nil
}
