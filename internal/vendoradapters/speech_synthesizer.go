package vendoradapters

import (
	"context"

	"numbers-dictation-platform/backend/internal/catalog"
)

// SpeechSynthesizer renders a French sentence to encoded audio bytes with
// the given neural voice.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, sentence string, voice catalog.FrenchVoice) ([]byte, error)
}
