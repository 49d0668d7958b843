package quiz

// Source text longer than this is truncated before prompting.
const maxContentLength = 8000

const textPromptTemplate = `
You are a quiz generator AI.
Read the following content and create %d multiple-choice questions
that test understanding of the main ideas.

CONTENT:
%s

REQUIREMENTS:
- Provide exactly 4 options per question.
- Set correctAnswer to the index (0-3) of the correct option.
- Also include correctAnswerText equal to the exact string of the correct option.

FORMAT (JSON ONLY, NO TEXT OUTSIDE JSON):
{
  "questions": [
    {
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "correctAnswerText": "Option A"
    }
  ]
}
`

const filePromptTemplate = `
You are a quiz generator AI.
Analyze the attached file and create %d multiple-choice questions
that test understanding of the main ideas.

FORMAT (JSON ONLY, NO TEXT OUTSIDE JSON):
{
  "questions": [
    {
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "correctAnswerText": "Option A"
    }
  ]
}
`
