// Package goquery provides an HTML text extractor built on goquery.
// It performs deliberately simple tag stripping rather than content-aware
// boilerplate removal; see the readability package for the latter.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/coursegen/coursegen"
)

// Ensure Extractor implements coursegen.Extractor at compile time.
var _ coursegen.Extractor = (*Extractor)(nil)

// Extractor strips script/style content and markup from HTML and returns
// whitespace-normalized plain text, truncated to a character budget.
type Extractor struct {
	maxChars int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxChars overrides the output character budget.
// Non-positive values are ignored and the default coursegen.MaxExtractChars
// is kept; extracted text is always bounded.
func WithMaxChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxChars = n
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxChars: coursegen.MaxExtractChars}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns plain text suitable for prompting.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", coursegen.Errorf(coursegen.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", coursegen.Errorf(coursegen.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Collapse all whitespace runs to single spaces and trim.
	text := strings.Join(strings.Fields(doc.Text()), " ")

	return Truncate(text, e.maxChars), nil
}

// Truncate cuts s to at most n characters (runes), preserving rune
// boundaries. Truncation may cut mid-sentence. A non-positive n returns s
// unchanged.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
