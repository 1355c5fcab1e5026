package coursegen

import "context"

// DefaultVoice is the voice used for narration when none is specified.
const DefaultVoice = "alloy"

// Synthesizer converts text into spoken audio.
type Synthesizer interface {
	// Synthesize returns encoded audio (MP3) for the given text and voice.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// NarrationRequest asks the narration subsystem to synthesize a chapter's
// script, store the audio keyed by chapter ID, and attach the resulting URL
// to the chapter record.
type NarrationRequest struct {
	ChapterID string `json:"chapterId"`
	Text      string `json:"text"`
	Voice     string `json:"voice"`
}

// Narrator performs one narration request end to end: synthesis, storage,
// and chapter update. Storage is keyed by chapter ID and overwrites on
// retry, so narration is idempotent per chapter.
type Narrator interface {
	Narrate(ctx context.Context, req NarrationRequest) error
}

// NarrationDispatcher hands narration requests off for asynchronous
// processing. Dispatch never blocks and never reports completion: the
// pipeline holds no reference to in-flight narration, trading completion
// signal accuracy for reduced course-creation latency. Failures inside the
// narration subsystem are logged there and never reach the caller.
type NarrationDispatcher interface {
	Dispatch(req NarrationRequest)
}
