package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/coursegen/coursegen"
)

const quizUserPrompt = `Create 3 multiple choice quiz questions based on this content:

Title: %s
Content: %s

Return ONLY a valid JSON array:
[
  {
    "question": "Question text?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": "Option A",
    "explanation": "Why this is correct"
  }
]`

// QuizMessages builds the completion request messages that ask for quiz
// questions covering one chapter.
func QuizMessages(chapter *coursegen.Chapter) []coursegen.Message {
	return []coursegen.Message{
		{Role: coursegen.RoleUser, Content: fmt.Sprintf(quizUserPrompt, chapter.Title, chapter.Content)},
	}
}

// ParseQuizzes locates the first JSON array in a completion response and
// decodes it as quizzes for the given chapter. Prose before the JSON value
// can itself contain balanced brackets, so spans that fail to decode are
// skipped and the scan resumes after them. Elements that are null or fail
// validation are skipped rather than failing the batch; skipped reports how
// many were dropped. A response with no decodable array returns an error,
// which the caller treats as a per-chapter soft failure.
func ParseQuizzes(chapterID, content string) (quizzes []*coursegen.Quiz, skipped int, err error) {
	var drafts []*coursegen.Quiz
	rest := content
	for {
		span, start, ok := firstSpan(rest, '[', ']')
		if !ok {
			return nil, 0, coursegen.Errorf(coursegen.EINVALID, "no parsable JSON array in quiz response")
		}
		drafts = nil
		if err := json.Unmarshal([]byte(span), &drafts); err != nil {
			rest = rest[start+1:]
			continue
		}
		break
	}

	for _, q := range drafts {
		// JSON null is a valid array element and decodes to a nil quiz.
		if q == nil {
			skipped++
			continue
		}
		q.ChapterID = chapterID
		if err := q.Validate(); err != nil {
			skipped++
			continue
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, skipped, nil
}
