package sessionengine

import (
	"testing"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/datastore"
)

func exerciseWithDigits(digits string, numberType catalog.NumberType) datastore.NumberDictationExercise {
	return datastore.NumberDictationExercise{
		ID:         "test_" + digits,
		NumberType: numberType,
		Digits:     digits,
	}
}

func TestCheckAnswerExactMatch(t *testing.T) {
	result := CheckAnswer("0612345678", exerciseWithDigits("0612345678", catalog.TypePhone))
	if !result.IsCorrect {
		t.Fatalf("expected correct, got errors %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
}

func TestCheckAnswerSingleWrongDigit(t *testing.T) {
	result := CheckAnswer("0612345679", exerciseWithDigits("0612345678", catalog.TypePhone))
	if result.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	e := result.Errors[0]
	if e.Index != 9 || e.Expected != "8" || e.Got != "9" {
		t.Fatalf("unexpected error %+v", e)
	}
}

func TestCheckAnswerCommaNormalization(t *testing.T) {
	result := CheckAnswer("1235,50", exerciseWithDigits("1235.50", catalog.TypePrice))
	if !result.IsCorrect {
		t.Fatalf("comma should be treated as dot, got errors %v", result.Errors)
	}
}

func TestCheckAnswerShortInput(t *testing.T) {
	result := CheckAnswer("061", exerciseWithDigits("0612", catalog.TypePhone))
	if result.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	e := result.Errors[0]
	if e.Index != 3 || e.Expected != "2" || e.Got != "" {
		t.Fatalf("missing character should diff against empty, got %+v", e)
	}
}

func TestCheckAnswerLongInput(t *testing.T) {
	result := CheckAnswer("06129", exerciseWithDigits("0612", catalog.TypePhone))
	if result.IsCorrect {
		t.Fatal("expected incorrect")
	}
	e := result.Errors[0]
	if e.Index != 4 || e.Expected != "" || e.Got != "9" {
		t.Fatalf("extra character should diff against empty, got %+v", e)
	}
}

func TestCheckAnswerEmptyInput(t *testing.T) {
	result := CheckAnswer("", exerciseWithDigits("42", catalog.TypeAddress))
	if result.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected one error per missing digit, got %v", result.Errors)
	}
}
