package vendoradapters

import (
	"context"
	"fmt"
	"strings"

	"numbers-dictation-platform/backend/internal/catalog"
)

// MockSentenceAuthor is a canned implementation of SentenceAuthor used in
// tests and local development. It wraps the chunk sequence in a fixed
// carrier phrase that passes sentence validation.
type MockSentenceAuthor struct {
	// Sentence, when set, is returned verbatim for every call.
	Sentence string
	// Err, when set, is returned for every call.
	Err error

	Calls int
}

// Author returns a deterministic sentence containing the chunk sequence
// exactly once.
func (m *MockSentenceAuthor) Author(_ context.Context, chunks []string, _ catalog.SentenceBlueprint) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if m.Sentence != "" {
		return m.Sentence, nil
	}
	return fmt.Sprintf("Alors voilà, %s pour vous.", strings.Join(chunks, " ")), nil
}

// MockSpeechSynthesizer is a canned implementation of SpeechSynthesizer.
type MockSpeechSynthesizer struct {
	// Audio, when set, is returned for every call.
	Audio []byte
	// Err, when set, is returned for every call.
	Err error

	Calls int
}

// Synthesize returns placeholder audio bytes derived from the sentence.
func (m *MockSpeechSynthesizer) Synthesize(_ context.Context, sentence string, voice catalog.FrenchVoice) ([]byte, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return []byte("mock-mp3:" + string(voice) + ":" + sentence), nil
}
