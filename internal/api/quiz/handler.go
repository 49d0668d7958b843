package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/pkg/formatter"
	"github.com/majestic/ai-backend/internal/pkg/logger"
	"github.com/majestic/ai-backend/internal/pkg/response"
	"github.com/majestic/ai-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

// URL suffixes that indicate a direct file link rather than a web page.
var blockedURLExtensions = []string{
	".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx",
	".zip", ".rar", ".jpg", ".jpeg", ".png", ".gif", ".mp4",
	".mp3", ".avi", ".mov", ".exe", ".dmg",
}

type Handler struct {
	usecase       QuizUsecase
	validator     *validator.Validator
	formatters    *formatter.Factory
	maxUploadSize int64
}

func NewHandler(usecase QuizUsecase, v *validator.Validator, formatters *formatter.Factory, maxUploadSize int64) *Handler {
	return &Handler{
		usecase:       usecase,
		validator:     v,
		formatters:    formatters,
		maxUploadSize: maxUploadSize,
	}
}

// Generate handles POST /ai - build a quiz from text, a file, or a URL
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")
	r = r.WithContext(ctx)

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		h.generateFromJSON(w, r)
	case strings.Contains(contentType, "multipart/form-data"):
		h.generateFromForm(w, r)
	default:
		response.UserError(w, "Unsupported content type",
			"Send application/json or multipart/form-data.")
	}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}

func (h *Handler) generateFromJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.UserError(w, "invalid request body", "Send a valid JSON body.")
		return
	}

	numQuestions, format, err := h.parseCommon(string(req.NumQuestions), req.Format)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	switch {
	case req.URL != "":
		h.generateFromURL(w, r, req.URL, numQuestions, format)
	case req.Text != "":
		h.respond(w, r, format, func() (*entity.QuizResult, error) {
			return h.usecase.GenerateFromText(ctx, req.Text, numQuestions)
		})
	default:
		response.UserError(w, "Provide 'url' or 'text' or 'file'",
			"Send text to quiz on, a YouTube URL, or upload a file via multipart form.")
	}
}

func (h *Handler) generateFromForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		response.UserError(w, "failed to parse form", "Check the multipart form encoding and file size.")
		return
	}

	numQuestions, format, err := h.parseCommon(r.FormValue("numQuestions"), r.FormValue("format"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		h.generateFromUpload(w, r, file, header.Filename, header.Header.Get("Content-Type"), numQuestions, format)
	case r.FormValue("url") != "":
		h.generateFromURL(w, r, r.FormValue("url"), numQuestions, format)
	case r.FormValue("text") != "":
		h.respond(w, r, format, func() (*entity.QuizResult, error) {
			return h.usecase.GenerateFromText(ctx, r.FormValue("text"), numQuestions)
		})
	default:
		response.UserError(w, "Provide 'url' or 'text' or 'file'",
			"Attach a PDF/image file, or send text or a YouTube URL.")
	}
}

func (h *Handler) generateFromURL(w http.ResponseWriter, r *http.Request, url string, numQuestions int, format entity.ResultFormat) {
	ctx := r.Context()

	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		ctxzap.Info(ctx, "processing youtube url", zap.String("url", url))
		h.respond(w, r, format, func() (*entity.QuizResult, error) {
			return h.usecase.GenerateFromYouTube(ctx, url, numQuestions)
		})
		return
	}

	lower := strings.ToLower(url)
	for _, ext := range blockedURLExtensions {
		if strings.HasSuffix(lower, ext) || strings.Contains(lower, ext+"?") {
			response.UserError(w,
				"File URLs are not supported. Please use YouTube URLs for videos or upload files directly.",
				"For PDF files, use the file upload option instead of providing a URL.")
			return
		}
	}

	response.UserError(w,
		"Only YouTube URLs are currently supported. For other content, please upload as a file or paste text.",
		"Download the webpage content and upload it as a PDF, or copy the text and paste it directly.")
}

func (h *Handler) generateFromUpload(w http.ResponseWriter, r *http.Request, file io.Reader, filename, contentType string, numQuestions int, format entity.ResultFormat) {
	ctx := r.Context()
	ext := strings.ToLower(filepath.Ext(filename))

	tmp, err := os.CreateTemp("", "quiz-upload-*"+ext)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	path := tmp.Name()
	defer h.cleanupTempFile(r, path)

	written, err := io.Copy(tmp, file)
	tmp.Close()
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if written == 0 {
		response.UserError(w, "Uploaded file is empty", "Upload a non-empty PDF or image file.")
		return
	}

	source, mimeType := classifyUpload(contentType, ext)

	ctxzap.Info(ctx, "processing uploaded file",
		zap.String("filename", filename),
		zap.Int64("size_bytes", written),
		zap.String("source_type", string(source)),
		zap.String("mime_type", mimeType),
	)

	h.respond(w, r, format, func() (*entity.QuizResult, error) {
		return h.usecase.GenerateFromFile(ctx, path, mimeType, source, numQuestions)
	})
}

// classifyUpload decides the processing route and MIME type from the
// declared content type and the filename extension. Unknown uploads are
// treated as PDFs.
func classifyUpload(contentType, ext string) (entity.QuizSource, string) {
	switch {
	case strings.HasPrefix(contentType, "application/pdf"):
		return entity.SourcePDF, "application/pdf"
	case strings.HasPrefix(contentType, "image/"):
		return entity.SourceImage, contentType
	}

	switch ext {
	case ".pdf":
		return entity.SourcePDF, "application/pdf"
	case ".png", ".jpg", ".jpeg":
		if guessed := mime.TypeByExtension(ext); guessed != "" {
			return entity.SourceImage, guessed
		}
		return entity.SourceImage, "image/jpeg"
	default:
		return entity.SourcePDF, "application/pdf"
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, format entity.ResultFormat, generate func() (*entity.QuizResult, error)) {
	result, err := generate()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if format == entity.FormatJSON {
		response.Success(w, result)
		return
	}

	fmtr, err := h.formatters.Create(format)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	data, err := fmtr.Format(result)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Attachment(w, fmtr.ContentType(), "quiz"+fmtr.FileExtension(), data)
}

// cleanupTempFile removes an uploaded temp file. Failures are logged and
// never surfaced; on some platforms the file can be transiently locked.
func (h *Handler) cleanupTempFile(r *http.Request, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		ctxzap.Warn(r.Context(), "could not delete temp file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

func (h *Handler) parseCommon(rawNum, rawFormat string) (int, entity.ResultFormat, error) {
	numQuestions, err := h.validator.ParseNumQuestions(rawNum)
	if err != nil {
		return 0, "", err
	}
	format, err := h.validator.ValidateFormat(rawFormat)
	if err != nil {
		return 0, "", err
	}
	return numQuestions, format, nil
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctxzap.Error(r.Context(), "quiz generation failed", zap.Error(err))

	if errors.Is(err, entity.ErrInvalidInput) ||
		errors.Is(err, entity.ErrMissingField) ||
		errors.Is(err, entity.ErrExtraction) ||
		errors.Is(err, entity.ErrNoCaptions) ||
		errors.Is(err, entity.ErrNotFound) {
		response.UserError(w, err.Error(), errorSuggestion(err.Error()))
		return
	}

	response.ServerError(w,
		"An unexpected error occurred. Please try again.",
		err.Error(),
		serverErrorSuggestion(err.Error()),
	)
}
