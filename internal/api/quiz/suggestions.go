package quiz

import "strings"

// errorSuggestion maps a failure message to a user-actionable hint.
func errorSuggestion(msg string) string {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "caption") || strings.Contains(lower, "transcript"):
		return "Try a different YouTube video with captions enabled, " +
			"or upload the content as a PDF/image file instead."
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many requests"):
		return "Please wait 30-60 minutes before trying again, or upload content as a PDF file."
	case strings.Contains(lower, "api key"):
		return "Check that your Gemini API key is valid and has sufficient quota."
	case strings.Contains(lower, "too short") || strings.Contains(lower, "empty"):
		return "The content is too short to generate meaningful quiz questions."
	case strings.Contains(lower, "unavailable") || strings.Contains(lower, "private"):
		return "This video cannot be accessed. Try a different public video or upload as PDF."
	default:
		return "Please check your input and try again, or upload content as a PDF file."
	}
}

// serverErrorSuggestion is the heuristic used for unexpected failures.
func serverErrorSuggestion(msg string) string {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "gemini") || strings.Contains(lower, "api key"):
		return "Check that your Gemini API key is valid and has sufficient quota."
	case strings.Contains(lower, "file") || strings.Contains(lower, "pdf"):
		return "The file may be corrupted or in an unsupported format. Try a different PDF file."
	default:
		return errorSuggestion(msg)
	}
}
