package mock

import "github.com/coursegen/coursegen"

var _ coursegen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of coursegen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
