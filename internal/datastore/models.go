package datastore

import (
	"time"

	"numbers-dictation-platform/backend/internal/catalog"
)

// NumberDictationExercise is one fully materialized dictation exercise.
// Exercises are admin-generated, written into a versioned manifest, and
// immutable forever after publication.
type NumberDictationExercise struct {
	ID           string             `json:"id"`
	NumberType   catalog.NumberType `json:"number_type"`
	Digits       string             `json:"digits"`
	SpokenChunks []string           `json:"spoken_chunks"`
	Sentence     string             `json:"sentence"`
	AudioRef     string             `json:"audio_ref"`
	BlueprintID  string             `json:"blueprint_id"`
	VersionTag   string             `json:"version_tag"`
	Voice        string             `json:"voice"`
	CreatedAt    time.Time          `json:"created_at"`
}

// DatasetManifest is the frozen collection of exercises for one dataset
// version. Append-only during a generation run, read-only afterwards.
type DatasetManifest struct {
	Version       string                    `json:"version"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	ExerciseCount int                       `json:"exercise_count"`
	Exercises     []NumberDictationExercise `json:"exercises"`
}

// ManifestStore persists and loads dataset manifests keyed by version tag.
// LoadManifest on an unknown version returns an empty manifest, not an error.
type ManifestStore interface {
	SaveManifest(manifest *DatasetManifest) error
	LoadManifest(version string) (*DatasetManifest, error)
	ListVersions() ([]string, error)
	ListExercisesByTypes(types []catalog.NumberType) ([]NumberDictationExercise, error)
	Close() error
}
