package coursegen_test

import (
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/stretchr/testify/assert"
)

func TestYouTubeVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "watch URL with extra params",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "short share URL",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "plain article URL",
			url:    "https://example.com/articles/go-concurrency",
			wantOK: false,
		},
		{
			name:   "youtube homepage without video",
			url:    "https://www.youtube.com/",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := coursegen.YouTubeVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestYouTubeEmbedURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ",
		coursegen.YouTubeEmbedURL("dQw4w9WgXcQ"))
}
