// Package repository exposes the read-side contract the session engine
// consumes: all published exercises for a set of number types, any dataset
// version, stable within a process lifetime.
package repository

import (
	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/datastore"
)

// ExerciseRepository is consumed by the session engine. Implementations may
// read from a hosted manifest, a database, or anything else that can hand
// back immutable exercises.
type ExerciseRepository interface {
	ListByTypes(types []catalog.NumberType) ([]datastore.NumberDictationExercise, error)
}

// StoreRepository adapts a ManifestStore to the read contract.
type StoreRepository struct {
	store datastore.ManifestStore
}

// NewStoreRepository wraps a manifest store as an ExerciseRepository.
func NewStoreRepository(store datastore.ManifestStore) *StoreRepository {
	return &StoreRepository{store: store}
}

// ListByTypes returns all persisted exercises of the requested types.
func (r *StoreRepository) ListByTypes(types []catalog.NumberType) ([]datastore.NumberDictationExercise, error) {
	return r.store.ListExercisesByTypes(types)
}
