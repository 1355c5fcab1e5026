// Package readability provides a content-aware text extractor built on
// go-readability. Unlike the goquery extractor it removes boilerplate
// (navigation, footers, sidebars) before flattening to text, which tends
// to produce better prompting input on cluttered pages.
package readability

import (
	"strings"

	"github.com/coursegen/coursegen"
	gq "github.com/coursegen/coursegen/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements coursegen.Extractor at compile time.
var _ coursegen.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	maxChars int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{maxChars: coursegen.MaxExtractChars}
}

// Extract processes raw HTML and returns whitespace-normalized plain text
// of the main content, truncated to the standard character budget.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", coursegen.Errorf(coursegen.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	return gq.Truncate(text, e.maxChars), nil
}
