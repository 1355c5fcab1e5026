package coursegen

// MaxExtractChars bounds the text handed to the outline generator.
// This is a cost/latency bound, not a correctness requirement; truncation
// may cut mid-sentence.
const MaxExtractChars = 10000

// Extractor produces plain text from raw HTML for downstream prompting.
type Extractor interface {
	// Extract strips script/style content and markup, collapses runs of
	// whitespace to single spaces, trims the result, and truncates it to
	// MaxExtractChars.
	Extract(html string) (string, error)
}
