package readability_test

import (
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main article text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Go Concurrency</title></head>
<body>
<nav>Home | About</nav>
<article>
<h1>Go Concurrency</h1>
<p>Goroutines are lightweight threads managed by the Go runtime. They make
concurrent programming straightforward and cheap enough to use liberally.</p>
<p>Channels connect goroutines, letting them exchange values and synchronize
without explicit locks or condition variables in most programs.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

		e := readability.NewExtractor()
		text, err := e.Extract(html)
		require.NoError(t, err)
		assert.Contains(t, text, "Goroutines are lightweight threads")
		assert.Contains(t, text, "Channels connect goroutines")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})
}
