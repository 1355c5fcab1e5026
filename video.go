package coursegen

import "regexp"

// youtubeRE matches YouTube watch and share URLs and captures the video ID.
var youtubeRE = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\s?/]+)`)

// YouTubeVideoID extracts the video ID from a YouTube watch or share URL.
// It reports ok=false for URLs that are not recognized video links.
func YouTubeVideoID(url string) (id string, ok bool) {
	m := youtubeRE.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// YouTubeEmbedURL returns the canonical embeddable player URL for a video ID.
func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
