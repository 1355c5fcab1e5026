// Package coursegen turns a web page or video link into a structured,
// multi-chapter course: text extraction, AI-driven outline generation,
// per-chapter narration audio, and per-chapter quizzes, persisted for
// later playback and progress tracking.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, openai/).
package coursegen
