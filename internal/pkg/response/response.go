package response

import (
	"encoding/json"
	"net/http"
)

// QuizErrorResponse is the error envelope of the quiz service.
type QuizErrorResponse struct {
	Error      string `json:"error"`
	Detail     string `json:"detail,omitempty"`
	Type       string `json:"type"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Can't change response at this point, just log
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Success writes a success response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// UserError writes a 400 response with a user-actionable suggestion.
func UserError(w http.ResponseWriter, message, suggestion string) {
	JSON(w, http.StatusBadRequest, QuizErrorResponse{
		Error:      message,
		Type:       "user_error",
		Suggestion: suggestion,
	})
}

// ServerError writes a 500 response for unexpected failures.
func ServerError(w http.ResponseWriter, message, detail, suggestion string) {
	JSON(w, http.StatusInternalServerError, QuizErrorResponse{
		Error:      message,
		Detail:     detail,
		Type:       "server_error",
		Suggestion: suggestion,
	})
}

// Attachment writes binary content with a download disposition.
func Attachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
