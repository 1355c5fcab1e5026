package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/coursegen/coursegen"
)

const outlineSystemPrompt = "You are an expert educational content creator. " +
	"Your task is to analyze content and create a structured course outline with chapters. " +
	"Each chapter should have a clear title, content summary, and a script suitable for voiceover narration."

const outlineUserPrompt = `Analyze this content and create a course structure with 5-8 chapters. For each chapter, provide:
1. A clear, engaging title
2. Key content points (2-3 sentences)
3. A natural voiceover script (2-3 paragraphs) that explains the concepts clearly

Content to analyze:
%s

Return ONLY a valid JSON object with this structure:
{
  "title": "Course Title",
  "description": "Course description",
  "chapters": [
    {
      "title": "Chapter Title",
      "content": "Key points summary",
      "script": "Full voiceover script"
    }
  ]
}`

// OutlineMessages builds the completion request messages that ask for a
// course outline covering the given source text.
func OutlineMessages(text string) []coursegen.Message {
	return []coursegen.Message{
		{Role: coursegen.RoleSystem, Content: outlineSystemPrompt},
		{Role: coursegen.RoleUser, Content: fmt.Sprintf(outlineUserPrompt, text)},
	}
}

// ParseOutline locates the first JSON object in a completion response and
// decodes it as a course outline. Prose before the JSON value can itself
// contain balanced braces, so spans that fail to decode are skipped and the
// scan resumes after them. A response with no decodable object is a fatal
// ingestion error: without chapters there is no course to build.
func ParseOutline(content string) (*coursegen.Outline, error) {
	rest := content
	for {
		span, start, ok := firstSpan(rest, '{', '}')
		if !ok {
			return nil, coursegen.Errorf(coursegen.EINVALID, "no parsable JSON object in outline response")
		}

		var outline coursegen.Outline
		if err := json.Unmarshal([]byte(span), &outline); err != nil {
			rest = rest[start+1:]
			continue
		}
		if err := outline.Validate(); err != nil {
			return nil, err
		}
		return &outline, nil
	}
}
