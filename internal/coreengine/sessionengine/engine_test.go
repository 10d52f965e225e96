package sessionengine

import (
	"fmt"
	"math/rand"
	"testing"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/datastore"
)

// fakeRepository serves a fixed pool, satisfying the repository read
// contract without any I/O.
type fakeRepository struct {
	pool []datastore.NumberDictationExercise
}

func (f *fakeRepository) ListByTypes(types []catalog.NumberType) ([]datastore.NumberDictationExercise, error) {
	wanted := make(map[catalog.NumberType]bool)
	for _, t := range types {
		wanted[t] = true
	}
	out := []datastore.NumberDictationExercise{}
	for _, ex := range f.pool {
		if wanted[ex.NumberType] {
			out = append(out, ex)
		}
	}
	return out, nil
}

func phonePool(n int) []datastore.NumberDictationExercise {
	pool := make([]datastore.NumberDictationExercise, n)
	for i := range pool {
		pool[i] = datastore.NumberDictationExercise{
			ID:         fmt.Sprintf("phone_%02d", i),
			NumberType: catalog.TypePhone,
			Digits:     fmt.Sprintf("06%08d", i),
		}
	}
	return pool
}

func newTestEngine(pool []datastore.NumberDictationExercise) *Engine {
	return NewEngine(&fakeRepository{pool: pool}, rand.New(rand.NewSource(1)))
}

func TestCreateSessionSamplesWithoutReplacement(t *testing.T) {
	engine := newTestEngine(phonePool(10))

	session, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 5)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if len(session.Exercises) != 5 {
		t.Fatalf("expected 5 exercises, got %d", len(session.Exercises))
	}

	seen := make(map[string]bool)
	for _, state := range session.Exercises {
		if seen[state.Exercise.ID] {
			t.Fatalf("exercise %s repeated within session", state.Exercise.ID)
		}
		seen[state.Exercise.ID] = true
	}
}

func TestCreateSessionPoolTooSmall(t *testing.T) {
	engine := newTestEngine(phonePool(3))

	if _, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 4); err == nil {
		t.Fatal("expected error when count exceeds pool size")
	}
}

func TestCreateSessionRejectsBadArguments(t *testing.T) {
	engine := newTestEngine(phonePool(3))

	if _, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 0); err == nil {
		t.Fatal("expected error for count 0")
	}
	if _, err := engine.CreateSession(nil, 2); err == nil {
		t.Fatal("expected error for empty type list")
	}
	if _, err := engine.CreateSession([]catalog.NumberType{catalog.TypeYear}, 1); err == nil {
		t.Fatal("expected error when no exercises exist for the type")
	}
}

func TestNextExerciseWalksInOrder(t *testing.T) {
	engine := newTestEngine(phonePool(3))
	session, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 3)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	first := NextExercise(session)
	if first == nil || first != session.Exercises[0] {
		t.Fatal("next exercise should be the first unanswered one")
	}
	if session.CurrentIndex != 0 {
		t.Fatalf("cursor = %d, want 0", session.CurrentIndex)
	}

	if _, _, err := ApplyAnswer(session, first.ID, first.Exercise.Digits); err != nil {
		t.Fatalf("ApplyAnswer: %v", err)
	}

	second := NextExercise(session)
	if second != session.Exercises[1] {
		t.Fatal("cursor should advance past the answered exercise")
	}
	if session.CurrentIndex != 1 {
		t.Fatalf("cursor = %d, want 1", session.CurrentIndex)
	}
}

func TestNextExerciseNilWhenComplete(t *testing.T) {
	engine := newTestEngine(phonePool(2))
	session, _ := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 2)

	for _, state := range session.Exercises {
		if _, _, err := ApplyAnswer(session, state.ID, state.Exercise.Digits); err != nil {
			t.Fatalf("ApplyAnswer: %v", err)
		}
	}
	if next := NextExercise(session); next != nil {
		t.Fatalf("expected nil for completed session, got %v", next.ID)
	}
}

func TestApplyAnswerUnknownExercise(t *testing.T) {
	engine := newTestEngine(phonePool(1))
	session, _ := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 1)

	if _, _, err := ApplyAnswer(session, "missing-id", "06"); err == nil {
		t.Fatal("expected error for unknown exercise id")
	}
	if session.Exercises[0].Answered() {
		t.Fatal("session state must stay untouched after a failed answer")
	}
}

func TestApplyAnswerIsWriteOnce(t *testing.T) {
	engine := newTestEngine(phonePool(1))
	session, _ := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 1)
	state := session.Exercises[0]

	if _, _, err := ApplyAnswer(session, state.ID, "wrong"); err != nil {
		t.Fatalf("first ApplyAnswer: %v", err)
	}
	if _, _, err := ApplyAnswer(session, state.ID, state.Exercise.Digits); err == nil {
		t.Fatal("second answer for the same exercise should be rejected")
	}
	if *state.UserInput != "wrong" {
		t.Fatalf("first answer must survive, got %q", *state.UserInput)
	}
}

func TestEndToEndSingleExerciseSession(t *testing.T) {
	pool := []datastore.NumberDictationExercise{{
		ID:         "phone_e2e",
		NumberType: catalog.TypePhone,
		Digits:     "0612345678",
	}}

	t.Run("correct answer scores 1.0", func(t *testing.T) {
		engine := newTestEngine(pool)
		session, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 1)
		if err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
		state := NextExercise(session)

		_, result, err := ApplyAnswer(session, state.ID, "0612345678")
		if err != nil {
			t.Fatalf("ApplyAnswer: %v", err)
		}
		if !result.IsCorrect || len(result.Errors) != 0 {
			t.Fatalf("expected correct with no errors, got %+v", result)
		}

		summary := ComputeSummary(session)
		if summary.Score != 1.0 {
			t.Fatalf("score = %v, want 1.0", summary.Score)
		}
	})

	t.Run("one wrong digit scores 0.0", func(t *testing.T) {
		engine := newTestEngine(pool)
		session, _ := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 1)
		state := NextExercise(session)

		_, result, err := ApplyAnswer(session, state.ID, "0612345679")
		if err != nil {
			t.Fatalf("ApplyAnswer: %v", err)
		}
		if result.IsCorrect {
			t.Fatal("expected incorrect")
		}
		if len(result.Errors) != 1 {
			t.Fatalf("expected 1 digit error, got %v", result.Errors)
		}
		e := result.Errors[0]
		if e.Index != 9 || e.Expected != "8" || e.Got != "9" {
			t.Fatalf("unexpected digit error %+v", e)
		}

		summary := ComputeSummary(session)
		if summary.Score != 0.0 {
			t.Fatalf("score = %v, want 0.0", summary.Score)
		}
	})
}

func TestComputeSummaryPerType(t *testing.T) {
	pool := []datastore.NumberDictationExercise{
		{ID: "p1", NumberType: catalog.TypePhone, Digits: "0611111111"},
		{ID: "p2", NumberType: catalog.TypePhone, Digits: "0622222222"},
		{ID: "y1", NumberType: catalog.TypeYear, Digits: "1998"},
	}
	engine := newTestEngine(pool)
	session, err := engine.CreateSession([]catalog.NumberType{catalog.TypePhone, catalog.TypeYear}, 3)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Answer phones correctly, the year wrong; leave nothing unanswered.
	for _, state := range session.Exercises {
		answer := state.Exercise.Digits
		if state.Exercise.NumberType == catalog.TypeYear {
			answer = "1999"
		}
		if _, _, err := ApplyAnswer(session, state.ID, answer); err != nil {
			t.Fatalf("ApplyAnswer: %v", err)
		}
	}

	summary := ComputeSummary(session)
	if summary.TotalExercises != 3 || summary.Answered != 3 {
		t.Fatalf("totals wrong: %+v", summary)
	}
	if summary.Correct != 2 || summary.Incorrect != 1 {
		t.Fatalf("tallies wrong: %+v", summary)
	}
	if want := 2.0 / 3.0; summary.Score != want {
		t.Fatalf("score = %v, want %v", summary.Score, want)
	}

	byType := map[catalog.NumberType]PerTypeStats{}
	for _, s := range summary.PerType {
		byType[s.NumberType] = s
	}
	if s := byType[catalog.TypePhone]; s.Total != 2 || s.Correct != 2 || s.Incorrect != 0 {
		t.Fatalf("phone stats wrong: %+v", s)
	}
	if s := byType[catalog.TypeYear]; s.Total != 1 || s.Correct != 0 || s.Incorrect != 1 {
		t.Fatalf("year stats wrong: %+v", s)
	}

	if summary.Extra == nil {
		t.Fatal("expected digit accuracy extra for answered session")
	}
	acc, ok := summary.Extra["digit_accuracy"].(float64)
	if !ok || acc <= 0 || acc > 1 {
		t.Fatalf("digit_accuracy out of range: %v", summary.Extra)
	}
}

func TestSessionStore(t *testing.T) {
	store := NewInMemorySessionStore()
	engine := newTestEngine(phonePool(1))
	session, _ := engine.CreateSession([]catalog.NumberType{catalog.TypePhone}, 1)

	store.Save(session)
	got, ok := store.Get(session.ID)
	if !ok || got.ID != session.ID {
		t.Fatal("stored session not retrievable")
	}

	if _, ok := store.Get("nope"); ok {
		t.Fatal("unknown id should not resolve")
	}

	store.Delete(session.ID)
	if _, ok := store.Get(session.ID); ok {
		t.Fatal("deleted session should be gone")
	}
}
