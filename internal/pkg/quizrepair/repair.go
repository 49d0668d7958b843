// Package quizrepair normalizes loosely-structured AI quiz responses into
// the strict four-option schema the API promises.
package quizrepair

import (
	"fmt"
	"math"
	"strings"

	"github.com/majestic/ai-backend/internal/entity"
)

const optionCount = 4

// Repair coerces every raw question into a well-formed QuizQuestion:
// exactly four options (truncated or right-padded with empty strings), a
// correct-answer index in [0,4) and a correct-answer text equal to the
// option at that index. When the raw response carries a non-empty
// correctAnswerText that matches an option, that match overrides any
// provided index; text is the more trustworthy signal when the two
// disagree. Total and deterministic over any input, and idempotent.
func Repair(raw entity.RawQuiz) entity.QuizResult {
	repaired := make([]entity.QuizQuestion, 0, len(raw.Questions))

	for _, q := range raw.Questions {
		options := coerceOptions(q.Options)
		index, indexValid := coerceIndex(q.CorrectAnswer)

		if text, ok := q.CorrectAnswerText.(string); ok && text != "" {
			if match := matchOption(options, text); match >= 0 {
				index = match
				indexValid = true
			}
		}

		if !indexValid {
			// Conservative fallback: a usable-but-possibly-wrong answer
			// beats a crash.
			index = 0
		}

		repaired = append(repaired, entity.QuizQuestion{
			Question:          coerceString(q.Question),
			Options:           options,
			CorrectAnswer:     index,
			CorrectAnswerText: options[index],
		})
	}

	return entity.QuizResult{Questions: repaired}
}

// coerceOptions yields exactly optionCount strings.
func coerceOptions(raw any) []string {
	options := make([]string, 0, optionCount)

	if list, ok := raw.([]any); ok {
		for _, o := range list {
			if len(options) == optionCount {
				break
			}
			options = append(options, coerceString(o))
		}
	}
	for len(options) < optionCount {
		options = append(options, "")
	}
	return options
}

// coerceIndex accepts any JSON number holding an integral value in [0,4).
func coerceIndex(raw any) (int, bool) {
	var idx int
	switch n := raw.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		idx = int(n)
	case int:
		idx = n
	default:
		return 0, false
	}

	if idx < 0 || idx >= optionCount {
		return 0, false
	}
	return idx, true
}

func matchOption(options []string, text string) int {
	want := strings.TrimSpace(text)
	for i, o := range options {
		if strings.TrimSpace(o) == want {
			return i
		}
	}
	return -1
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
