package vendoradapters

import (
	"context"
	"fmt"
	"time"

	"github.com/Microsoft/cognitive-services-speech-sdk-go/common"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/speech"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/logging"
)

const synthesisTimeout = 60 * time.Second

// MicrosoftTTSAdapterConfig carries the Azure Speech subscription used for
// synthesis.
type MicrosoftTTSAdapterConfig struct {
	SubscriptionKey string
	Region          string
}

// MicrosoftTTSAdapter implements SpeechSynthesizer on top of Azure
// Cognitive Speech Services. Output is MP3.
type MicrosoftTTSAdapter struct {
	cfg MicrosoftTTSAdapterConfig
	log *logging.Logger
}

// NewMicrosoftTTSAdapter creates a new instance of MicrosoftTTSAdapter.
func NewMicrosoftTTSAdapter(cfg MicrosoftTTSAdapterConfig, log *logging.Logger) (*MicrosoftTTSAdapter, error) {
	if cfg.SubscriptionKey == "" {
		return nil, fmt.Errorf("azure tts adapter: subscription key is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("azure tts adapter: region is required")
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &MicrosoftTTSAdapter{cfg: cfg, log: log}, nil
}

// Synthesize renders the sentence with the given voice. The SDK call runs
// asynchronously; a timeout bounds how long a stuck synthesis can hold the
// generator.
func (a *MicrosoftTTSAdapter) Synthesize(ctx context.Context, sentence string, voice catalog.FrenchVoice) ([]byte, error) {
	if sentence == "" {
		return nil, fmt.Errorf("azure tts adapter: sentence is empty")
	}
	if voice == "" {
		voice = catalog.VoiceDenise
	}

	speechConfig, err := speech.NewSpeechConfigFromSubscription(a.cfg.SubscriptionKey, a.cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure SpeechConfig: %w", err)
	}
	defer speechConfig.Close()

	if err := speechConfig.SetSpeechSynthesisVoiceName(string(voice)); err != nil {
		return nil, fmt.Errorf("failed to set synthesis voice %q: %w", voice, err)
	}
	if err := speechConfig.SetSpeechSynthesisOutputFormat(common.Audio16Khz32KBitRateMonoMp3); err != nil {
		return nil, fmt.Errorf("failed to set synthesis output format: %w", err)
	}

	// nil audio config keeps the result in memory instead of a speaker.
	synthesizer, err := speech.NewSpeechSynthesizerFromConfig(speechConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure SpeechSynthesizer: %w", err)
	}
	defer synthesizer.Close()

	startTime := time.Now()
	task := synthesizer.SpeakTextAsync(sentence)

	var outcome speech.SpeechSynthesisOutcome
	select {
	case outcome = <-task:
	case <-ctx.Done():
		return nil, fmt.Errorf("azure speech synthesis cancelled: %w", ctx.Err())
	case <-time.After(synthesisTimeout):
		return nil, fmt.Errorf("azure speech synthesis timed out after %v", synthesisTimeout)
	}
	defer outcome.Close()

	if outcome.Error != nil {
		return nil, fmt.Errorf("azure speech synthesis error: %w", outcome.Error)
	}
	if outcome.Result.Reason != common.SynthesizingAudioCompleted {
		return nil, fmt.Errorf("azure speech synthesis failed with reason: %d", outcome.Result.Reason)
	}

	a.log.Debug("synthesized sentence",
		"voice", string(voice),
		"bytes", len(outcome.Result.AudioData),
		"latency", time.Since(startTime).String())
	return outcome.Result.AudioData, nil
}
