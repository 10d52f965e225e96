package sessionengine

import (
	"fmt"
	"math/rand"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/coreengine/answermetrics"
	"numbers-dictation-platform/backend/internal/datastore"
	"numbers-dictation-platform/backend/internal/repository"
)

// Engine builds and drives Numbers Dictation sessions from pre-generated
// exercises. It does no AI, no TTS, and no number generation, only sampling
// from the repository and bookkeeping. All dependencies, including the
// random source, are injected.
type Engine struct {
	repo repository.ExerciseRepository
	rng  *rand.Rand
}

// NewEngine creates a session engine over a read-only exercise repository.
func NewEngine(repo repository.ExerciseRepository, rng *rand.Rand) *Engine {
	return &Engine{repo: repo, rng: rng}
}

// CreateSession samples count distinct exercises of the requested types,
// without replacement, and wraps them in a new session. It fails before
// creating anything when the pool is too small; no partial session exists.
func (e *Engine) CreateSession(types []catalog.NumberType, count int) (*NumberDictationSession, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive")
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("at least one number type is required")
	}

	available, err := e.repo.ListByTypes(types)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises for session: %w", err)
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("no pre-generated exercises available for the requested types")
	}
	if count > len(available) {
		return nil, fmt.Errorf("requested %d exercises but only %d distinct exercises are available for the requested types", count, len(available))
	}

	// Sample without replacement so no exercise repeats within a session.
	sampled := make([]datastore.NumberDictationExercise, 0, count)
	for _, idx := range e.rng.Perm(len(available))[:count] {
		sampled = append(sampled, available[idx])
	}

	return newSession(types, sampled), nil
}

// NextExercise returns the first exercise in list order that has not been
// answered yet, advancing the session cursor to it. A nil return means the
// session is complete.
func NextExercise(session *NumberDictationSession) *NumberExerciseState {
	for idx, state := range session.Exercises {
		if !state.Answered() {
			session.CurrentIndex = idx
			return state
		}
	}
	return nil
}

// ApplyAnswer attaches a learner answer to the exercise state with the
// given id. The state transition Unanswered -> Answered happens exactly
// once; a second answer for the same exercise is rejected and the session
// is left untouched.
func ApplyAnswer(session *NumberDictationSession, exerciseID string, userInput string) (*NumberExerciseState, AnswerResult, error) {
	var target *NumberExerciseState
	for _, state := range session.Exercises {
		if state.ID == exerciseID {
			target = state
			break
		}
	}
	if target == nil {
		return nil, AnswerResult{}, fmt.Errorf("exercise with id %s not found in session", exerciseID)
	}
	if target.Answered() {
		return nil, AnswerResult{}, fmt.Errorf("exercise %s has already been answered", exerciseID)
	}

	result := CheckAnswer(userInput, target.Exercise)
	input := userInput
	target.UserInput = &input
	target.Result = &result

	return target, result, nil
}

// ComputeSummary tallies overall and per-type statistics for a session.
// Score is correct answers over total exercises (answered or not). The
// Extra map carries a supplementary mean digit accuracy over answered
// exercises; it never influences correctness.
func ComputeSummary(session *NumberDictationSession) SessionSummary {
	total := len(session.Exercises)
	answered := 0
	correct := 0

	perType := map[catalog.NumberType]*PerTypeStats{}
	var typeOrder []catalog.NumberType

	var expectedDigits, givenInputs []string

	for _, state := range session.Exercises {
		if !state.Answered() {
			continue
		}

		answered++
		isCorrect := state.Result.IsCorrect
		if isCorrect {
			correct++
		}

		ntype := state.Exercise.NumberType
		stats, ok := perType[ntype]
		if !ok {
			stats = &PerTypeStats{NumberType: ntype}
			perType[ntype] = stats
			typeOrder = append(typeOrder, ntype)
		}
		stats.Total++
		if isCorrect {
			stats.Correct++
		} else {
			stats.Incorrect++
		}

		expectedDigits = append(expectedDigits, state.Exercise.Digits)
		if state.UserInput != nil {
			givenInputs = append(givenInputs, *state.UserInput)
		} else {
			givenInputs = append(givenInputs, "")
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total)
	}

	summary := SessionSummary{
		SessionID:      session.ID,
		TotalExercises: total,
		Answered:       answered,
		Correct:        correct,
		Incorrect:      answered - correct,
		Score:          score,
		PerType:        []PerTypeStats{},
	}
	for _, ntype := range typeOrder {
		summary.PerType = append(summary.PerType, *perType[ntype])
	}

	if answered > 0 {
		summary.Extra = map[string]interface{}{
			"digit_accuracy": answermetrics.MeanDigitAccuracy(expectedDigits, givenInputs),
		}
	}

	return summary
}
