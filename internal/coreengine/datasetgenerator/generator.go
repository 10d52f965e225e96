// Package datasetgenerator runs the admin-only batch that produces a
// versioned dictation dataset: sampled numbers, authored carrier
// sentences, synthesized audio, and a single manifest flush at the end.
package datasetgenerator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/coreengine/numberwords"
	"numbers-dictation-platform/backend/internal/coreengine/sentencevalidator"
	"numbers-dictation-platform/backend/internal/datastore"
	"numbers-dictation-platform/backend/internal/logging"
	"numbers-dictation-platform/backend/internal/objectstore"
	"numbers-dictation-platform/backend/internal/sampling"
	"numbers-dictation-platform/backend/internal/vendoradapters"
)

// CurrentWeekTag returns the ISO week tag for the current UTC time,
// e.g. "2025-W37". It is the default dataset version for weekly runs.
func CurrentWeekTag() string {
	year, week := time.Now().UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Generator assembles dictation datasets. It is the only component
// allowed to call the LLM and TTS collaborators; everything downstream
// consumes the frozen manifest it writes.
//
// A run is single-threaded and single-writer per version tag; two
// concurrent runs against the same tag must be serialized by the caller.
type Generator struct {
	author       vendoradapters.SentenceAuthor
	synthesizer  vendoradapters.SpeechSynthesizer
	audioStorage objectstore.AudioStorage
	store        datastore.ManifestStore
	rng          *rand.Rand
	log          *logging.Logger

	voices         []catalog.FrenchVoice
	authorAttempts int
}

// GeneratorConfig tunes a Generator. Zero values pick the defaults.
type GeneratorConfig struct {
	// AuthorAttempts bounds how many candidate sentences are requested
	// per exercise before it is skipped. Defaults to 1.
	AuthorAttempts int
}

// NewGenerator wires a Generator from its collaborators. The RNG drives
// every random choice in a run, so a fixed seed reproduces the same
// sampling decisions.
func NewGenerator(
	author vendoradapters.SentenceAuthor,
	synthesizer vendoradapters.SpeechSynthesizer,
	audioStorage objectstore.AudioStorage,
	store datastore.ManifestStore,
	rng *rand.Rand,
	log *logging.Logger,
	cfg GeneratorConfig,
) (*Generator, error) {
	if author == nil || synthesizer == nil || audioStorage == nil || store == nil {
		return nil, fmt.Errorf("dataset generator: author, synthesizer, audio storage and manifest store are required")
	}
	if rng == nil {
		return nil, fmt.Errorf("dataset generator: rng is required")
	}
	if log == nil {
		log = logging.NewNop()
	}
	attempts := cfg.AuthorAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &Generator{
		author:         author,
		synthesizer:    synthesizer,
		audioStorage:   audioStorage,
		store:          store,
		rng:            rng,
		log:            log,
		voices:         catalog.AllFrenchVoices(),
		authorAttempts: attempts,
	}, nil
}

// Generate builds one dataset version and flushes its manifest exactly
// once. An empty versionTag defaults to the current ISO week tag.
//
// The returned stats map the number type to how many exercises were
// actually produced; a sentence that never validated lowers that type's
// count below the request without failing the batch.
func (g *Generator) Generate(ctx context.Context, versionTag string, perTypeCounts map[catalog.NumberType]int) (map[string]int, error) {
	version := versionTag
	if version == "" {
		version = CurrentWeekTag()
	}
	createdAt := time.Now().UTC()

	// Map iteration order is randomized; sort so a seeded run replays
	// the same sequence of draws.
	types := make([]catalog.NumberType, 0, len(perTypeCounts))
	for t := range perTypeCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	stats := make(map[string]int)
	var exercises []datastore.NumberDictationExercise

	for _, numberType := range types {
		count := perTypeCounts[numberType]
		if count <= 0 {
			continue
		}

		sentenceBlueprints := catalog.SentenceBlueprintsByType(numberType)
		if len(sentenceBlueprints) == 0 {
			return nil, fmt.Errorf("no sentence blueprints for %s", numberType)
		}

		generated := 0
		for i := 0; i < count; i++ {
			voice := g.voices[g.rng.Intn(len(g.voices))]

			digits, err := sampling.SampleDigitsForType(numberType, g.rng)
			if err != nil {
				return nil, fmt.Errorf("failed to sample %s value: %w", numberType, err)
			}
			spokenChunks := numberwords.ToSpokenChunks(digits, numberType)
			blueprint := sentenceBlueprints[g.rng.Intn(len(sentenceBlueprints))]

			sentence, err := g.authorValidSentence(ctx, spokenChunks, blueprint)
			if err != nil {
				g.log.Warn("skipping exercise, no valid sentence",
					"number_type", string(numberType),
					"digits", digits,
					"blueprint", blueprint.ID,
					"error", err.Error())
				continue
			}

			pause := g.rng.Intn(2) == 0
			sentenceWithPauses := sentencevalidator.FormatWithPauses(sentence, spokenChunks, pause)

			audioBytes, err := g.synthesizer.Synthesize(ctx, sentenceWithPauses, voice)
			if err != nil {
				return nil, fmt.Errorf("audio synthesis failed for %s '%s': %w", numberType, digits, err)
			}

			// Stable, voice-safe id: replaying a run with the same seed
			// reproduces the same ids.
			exerciseID := fmt.Sprintf("%s_%s_%s_%s",
				strings.ToLower(string(numberType)), digits, blueprint.ID, voice)

			audioRef, err := g.audioStorage.SaveAudio(ctx, audioBytes, exerciseID, version)
			if err != nil {
				return nil, fmt.Errorf("failed to store audio for exercise '%s': %w", exerciseID, err)
			}

			exercises = append(exercises, datastore.NumberDictationExercise{
				ID:           exerciseID,
				NumberType:   numberType,
				Digits:       digits,
				SpokenChunks: spokenChunks,
				Sentence:     sentenceWithPauses,
				AudioRef:     audioRef,
				BlueprintID:  blueprint.ID,
				VersionTag:   version,
				Voice:        string(voice),
				CreatedAt:    createdAt,
			})
			generated++
		}

		stats[string(numberType)] = generated
	}

	manifest := &datastore.DatasetManifest{
		Version:       version,
		GeneratedAt:   createdAt,
		ExerciseCount: len(exercises),
		Exercises:     exercises,
	}
	if err := g.store.SaveManifest(manifest); err != nil {
		return nil, fmt.Errorf("failed to write manifest for version '%s': %w", version, err)
	}

	g.log.Info("dataset generated", "version", version, "exercises", len(exercises))
	return stats, nil
}

// authorValidSentence asks the sentence author for up to authorAttempts
// candidates and returns the first that passes validation. Author output
// is never trusted without re-validation.
func (g *Generator) authorValidSentence(ctx context.Context, chunks []string, blueprint catalog.SentenceBlueprint) (string, error) {
	for attempt := 1; attempt <= g.authorAttempts; attempt++ {
		candidate, err := g.author.Author(ctx, chunks, blueprint)
		if err != nil {
			g.log.Warn("sentence author call failed",
				"attempt", attempt,
				"blueprint", blueprint.ID,
				"error", err.Error())
			continue
		}
		candidate = strings.TrimSpace(candidate)

		if sentencevalidator.Accept(candidate, chunks) {
			return candidate, nil
		}
		g.log.Info("candidate sentence rejected",
			"attempt", attempt,
			"blueprint", blueprint.ID,
			"preview", preview(candidate, 120))
	}
	return "", fmt.Errorf("no valid sentence after %d attempt(s)", g.authorAttempts)
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
