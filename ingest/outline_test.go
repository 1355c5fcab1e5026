package ingest_test

import (
	"strings"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineMessages(t *testing.T) {
	t.Parallel()

	msgs := ingest.OutlineMessages("some source text")
	require.Len(t, msgs, 2)
	assert.Equal(t, coursegen.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "expert educational content creator")
	assert.Equal(t, coursegen.RoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "5-8 chapters")
	assert.Contains(t, msgs[1].Content, "some source text")
}

func TestParseOutline(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		content := "Here is the course:\n" + `{
			"title": "Intro to Widgets",
			"description": "All about widgets.",
			"chapters": [
				{"title": "One", "content": "First.", "script": "Welcome."},
				{"title": "Two", "content": "Second.", "script": "Onward."}
			]
		}` + "\nLet me know if you need changes."

		outline, err := ingest.ParseOutline(content)
		require.NoError(t, err)
		assert.Equal(t, "Intro to Widgets", outline.Title)
		assert.Equal(t, "All about widgets.", outline.Description)
		require.Len(t, outline.Chapters, 2)
		assert.Equal(t, "One", outline.Chapters[0].Title)
		assert.Equal(t, "Onward.", outline.Chapters[1].Script)
	})

	t.Run("SkipsProseBracesBeforeObject", func(t *testing.T) {
		t.Parallel()

		// Balanced braces in the leading prose are not the outline; the scan
		// must move past them to the decodable object.
		content := `I structured this as {topic} -> {skill} pairs.
			{"title": "Pairs", "description": "D", "chapters": [
				{"title": "One", "content": "c", "script": "s"}
			]}`

		outline, err := ingest.ParseOutline(content)
		require.NoError(t, err)
		assert.Equal(t, "Pairs", outline.Title)
		require.Len(t, outline.Chapters, 1)
	})

	t.Run("ErrNoObject", func(t *testing.T) {
		t.Parallel()

		_, err := ingest.ParseOutline("I cannot produce a course from this content.")
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})

	t.Run("ErrMalformedJSON", func(t *testing.T) {
		t.Parallel()

		_, err := ingest.ParseOutline(`{"title": "X", "chapters": "not an array"}`)
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})

	t.Run("ErrNoChapters", func(t *testing.T) {
		t.Parallel()

		_, err := ingest.ParseOutline(`{"title": "X", "description": "Y", "chapters": []}`)
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
		assert.True(t, strings.Contains(coursegen.ErrorMessage(err), "chapters"))
	})
}
