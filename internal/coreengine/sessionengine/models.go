package sessionengine

import (
	"time"

	"github.com/google/uuid"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/datastore"
)

// DigitError is a single position-level mismatch between the expected
// digits and the learner's input. An absent character reads as "".
type DigitError struct {
	Index    int    `json:"index"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

// AnswerResult is the deterministic outcome of checking one answer.
// IsCorrect holds exactly when Errors is empty.
type AnswerResult struct {
	IsCorrect bool         `json:"is_correct"`
	Errors    []DigitError `json:"errors"`
}

// NumberExerciseState wraps a stored exercise with the learner's
// interaction state. UserInput and Result are written once, on the first
// answer, and never change afterwards.
type NumberExerciseState struct {
	ID        string                              `json:"id"`
	Exercise  datastore.NumberDictationExercise   `json:"exercise"`
	UserInput *string                             `json:"user_input,omitempty"`
	Result    *AnswerResult                       `json:"result,omitempty"`
}

// Answered reports whether this exercise has received its one answer.
func (s *NumberExerciseState) Answered() bool {
	return s.Result != nil
}

// NumberDictationSession is an in-memory session: a fixed, ordered set of
// exercises delivered to one learner. Sessions are never persisted and are
// lost on process restart.
type NumberDictationSession struct {
	ID           string                 `json:"id"`
	Types        []catalog.NumberType   `json:"types"`
	Exercises    []*NumberExerciseState `json:"exercises"`
	CurrentIndex int                    `json:"current_index"`
	CreatedAt    time.Time              `json:"created_at"`
}

func newSession(types []catalog.NumberType, exercises []datastore.NumberDictationExercise) *NumberDictationSession {
	states := make([]*NumberExerciseState, len(exercises))
	for i, ex := range exercises {
		states[i] = &NumberExerciseState{
			ID:       uuid.New().String(),
			Exercise: ex,
		}
	}
	return &NumberDictationSession{
		ID:        uuid.New().String(),
		Types:     types,
		Exercises: states,
		CreatedAt: time.Now().UTC(),
	}
}

// PerTypeStats aggregates answered-exercise tallies for one number type.
type PerTypeStats struct {
	NumberType catalog.NumberType `json:"number_type"`
	Total      int                `json:"total"`
	Correct    int                `json:"correct"`
	Incorrect  int                `json:"incorrect"`
}

// SessionSummary is derived on demand and never stored.
type SessionSummary struct {
	SessionID      string                 `json:"session_id"`
	TotalExercises int                    `json:"total_exercises"`
	Answered       int                    `json:"answered"`
	Correct        int                    `json:"correct"`
	Incorrect      int                    `json:"incorrect"`
	Score          float64                `json:"score"`
	PerType        []PerTypeStats         `json:"per_type"`
	Extra          map[string]interface{} `json:"extra,omitempty"`
}
