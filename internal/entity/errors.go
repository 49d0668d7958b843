package entity

import "errors"

// Domain errors
var (
	// Input errors (HTTP 400)
	ErrInvalidInput = errors.New("invalid input")
	ErrMissingField = errors.New("required field is missing")

	// Knowledge base / local file errors
	ErrNotFound = errors.New("not found")

	// Source extraction errors (HTTP 400, user-actionable)
	ErrExtraction = errors.New("extraction failed")
	ErrNoCaptions = errors.New("no captions available for this video")

	// AI provider errors (HTTP 500)
	ErrUpstream   = errors.New("upstream service failed")
	ErrGeneration = errors.New("quiz generation failed")

	// Startup / degraded-mode errors
	ErrNotConfigured = errors.New("AI provider not configured")
)
