package goquery_test

import (
	"strings"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("strips script content and tags and collapses whitespace", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		text, err := e.Extract(`<script>bad()</script><p>Hello   world</p>`)
		require.NoError(t, err)
		assert.Equal(t, "Hello world", text)
	})

	t.Run("strips style content", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		text, err := e.Extract(`<style>.x{color:red}</style><div>Go is <b>fun</b></div>`)
		require.NoError(t, err)
		assert.Equal(t, "Go is fun", text)
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		text, err := e.Extract("<p>\n\t  padded text  \n</p>")
		require.NoError(t, err)
		assert.Equal(t, "padded text", text)
	})

	t.Run("truncates to the character budget", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithMaxChars(11))
		text, err := e.Extract("<p>Hello world and then some</p>")
		require.NoError(t, err)
		assert.Equal(t, "Hello world", text)
	})

	t.Run("keeps text within the default budget", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		body := strings.Repeat("word ", 100)
		text, err := e.Extract("<p>" + body + "</p>")
		require.NoError(t, err)
		assert.Less(t, len(text), coursegen.MaxExtractChars)
		assert.True(t, strings.HasPrefix(text, "word word"))
	})

	t.Run("ignores non-positive budget override", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithMaxChars(0))
		body := strings.Repeat("x", coursegen.MaxExtractChars+500)
		text, err := e.Extract("<p>" + body + "</p>")
		require.NoError(t, err)
		assert.Len(t, text, coursegen.MaxExtractChars)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("preserves rune boundaries", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "héllo", goquery.Truncate("héllo wörld", 5))
	})

	t.Run("returns input when within budget", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "short", goquery.Truncate("short", 100))
	})
}
