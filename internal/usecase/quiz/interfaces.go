package quiz

import "context"

// AIConnector is the Gemini boundary for quiz generation.
type AIConnector interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithFile(ctx context.Context, path, mimeType, prompt string) (string, error)
}

// CaptionFetcher returns the flattened caption transcript of a video.
type CaptionFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// TextExtractor pulls plain text out of a local document file.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}
