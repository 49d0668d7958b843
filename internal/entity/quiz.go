package entity

import "encoding/json"

// QuizSource identifies where the quiz content comes from.
type QuizSource string

const (
	SourceText    QuizSource = "text"
	SourcePDF     QuizSource = "pdf"
	SourceImage   QuizSource = "image"
	SourceYouTube QuizSource = "youtube"
)

// ResultFormat selects how a generated quiz is rendered back to the client.
type ResultFormat string

const (
	FormatJSON     ResultFormat = "json"
	FormatMarkdown ResultFormat = "md"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

// QuizQuestion is a fully repaired multiple-choice question. Options always
// has exactly four entries and Options[CorrectAnswer] == CorrectAnswerText.
type QuizQuestion struct {
	Question          string   `json:"question"`
	Options           []string `json:"options"`
	CorrectAnswer     int      `json:"correctAnswer"`
	CorrectAnswerText string   `json:"correctAnswerText"`
}

// QuizResult is an ordered set of questions, in generation order.
type QuizResult struct {
	Questions []QuizQuestion `json:"questions"`
}

// RawQuizQuestion mirrors one loosely-typed question entry of the AI
// response. Every field may be absent or of the wrong shape; the repair
// step coerces it into a QuizQuestion.
type RawQuizQuestion struct {
	Question          any `json:"question"`
	Options           any `json:"options"`
	CorrectAnswer     any `json:"correctAnswer"`
	CorrectAnswerText any `json:"correctAnswerText"`
}

// RawQuiz is the untrusted intermediate representation of an AI quiz
// response.
type RawQuiz struct {
	Questions []RawQuizQuestion `json:"questions"`
}

// QuizRequest is the POST /ai JSON request body. The multipart form carries
// the same fields plus an optional file part.
type QuizRequest struct {
	Task         string      `json:"task,omitempty"`
	NumQuestions json.Number `json:"numQuestions,omitempty"`
	Text         string      `json:"text,omitempty"`
	URL          string      `json:"url,omitempty"`
	Format       string      `json:"format,omitempty"`
}
