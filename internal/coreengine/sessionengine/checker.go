package sessionengine

import (
	"strings"

	"numbers-dictation-platform/backend/internal/datastore"
)

// CheckAnswer diffs the learner's input against the exercise's expected
// digits, position by position. Both sides are normalized by mapping ','
// to '.' so either decimal convention works for prices. Nothing else is
// forgiven: comparison is strict, character for character, with absent
// characters treated as empty.
func CheckAnswer(userInput string, exercise datastore.NumberDictationExercise) AnswerResult {
	expected := []rune(strings.ReplaceAll(exercise.Digits, ",", "."))
	got := []rune(strings.ReplaceAll(userInput, ",", "."))

	errors := []DigitError{}

	maxLen := len(expected)
	if len(got) > maxLen {
		maxLen = len(got)
	}

	for i := 0; i < maxLen; i++ {
		expCh := ""
		if i < len(expected) {
			expCh = string(expected[i])
		}
		gotCh := ""
		if i < len(got) {
			gotCh = string(got[i])
		}
		if expCh != gotCh {
			errors = append(errors, DigitError{Index: i, Expected: expCh, Got: gotCh})
		}
	}

	return AnswerResult{
		IsCorrect: len(errors) == 0,
		Errors:    errors,
	}
}
