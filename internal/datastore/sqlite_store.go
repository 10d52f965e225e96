package datastore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"numbers-dictation-platform/backend/internal/catalog"
)

// SQLiteManifestStore is the local/dev counterpart of PostgresManifestStore.
// Same schema shape, file-backed.
type SQLiteManifestStore struct {
	db *sql.DB
}

// NewSQLiteManifestStore opens (or creates) the database file at dbPath and
// ensures the schema exists.
func NewSQLiteManifestStore(dbPath string) (*SQLiteManifestStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", dbPath, err)
	}

	store := &SQLiteManifestStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteManifestStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dataset_manifests (
		version TEXT PRIMARY KEY,
		generated_at DATETIME NOT NULL,
		exercise_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dictation_exercises (
		id TEXT PRIMARY KEY,
		version_tag TEXT NOT NULL,
		number_type TEXT NOT NULL,
		digits TEXT NOT NULL,
		spoken_chunks TEXT NOT NULL,
		sentence TEXT NOT NULL,
		audio_ref TEXT NOT NULL,
		blueprint_id TEXT NOT NULL,
		voice TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_number_type ON dictation_exercises(number_type);
	CREATE INDEX IF NOT EXISTS idx_exercises_version_tag ON dictation_exercises(version_tag);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create manifest schema: %w", err)
	}
	return nil
}

// SaveManifest writes a manifest and its exercises in one transaction,
// refusing to overwrite an already frozen version.
func (s *SQLiteManifestStore) SaveManifest(manifest *DatasetManifest) error {
	if manifest == nil {
		return errors.New("manifest must not be nil")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`SELECT COUNT(1) FROM dataset_manifests WHERE version = ?`, manifest.Version).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check manifest version %s: %w", manifest.Version, err)
	}
	if count > 0 {
		return fmt.Errorf("manifest version %s already exists and is frozen", manifest.Version)
	}

	_, err = tx.Exec(
		`INSERT INTO dataset_manifests (version, generated_at, exercise_count) VALUES (?, ?, ?)`,
		manifest.Version, manifest.GeneratedAt, manifest.ExerciseCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert manifest %s: %w", manifest.Version, err)
	}

	for _, ex := range manifest.Exercises {
		chunksJSON, err := json.Marshal(ex.SpokenChunks)
		if err != nil {
			return fmt.Errorf("failed to marshal spoken chunks for exercise %s: %w", ex.ID, err)
		}
		_, err = tx.Exec(
			`INSERT INTO dictation_exercises
				(id, version_tag, number_type, digits, spoken_chunks, sentence, audio_ref, blueprint_id, voice, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID, ex.VersionTag, string(ex.NumberType), ex.Digits, string(chunksJSON),
			ex.Sentence, ex.AudioRef, ex.BlueprintID, ex.Voice, ex.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert exercise %s: %w", ex.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit manifest %s: %w", manifest.Version, err)
	}
	return nil
}

// LoadManifest returns the manifest for a version; unknown versions read
// back as an empty manifest.
func (s *SQLiteManifestStore) LoadManifest(version string) (*DatasetManifest, error) {
	manifest := &DatasetManifest{Version: version, Exercises: []NumberDictationExercise{}}

	err := s.db.QueryRow(
		`SELECT generated_at, exercise_count FROM dataset_manifests WHERE version = ?`,
		version,
	).Scan(&manifest.GeneratedAt, &manifest.ExerciseCount)
	if errors.Is(err, sql.ErrNoRows) {
		return manifest, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", version, err)
	}

	rows, err := s.db.Query(
		`SELECT id, version_tag, number_type, digits, spoken_chunks, sentence, audio_ref, blueprint_id, voice, created_at
		 FROM dictation_exercises WHERE version_tag = ? ORDER BY id`,
		version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises for version %s: %w", version, err)
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	manifest.Exercises = exercises
	return manifest, nil
}

// ListVersions returns all persisted manifest versions, newest first.
func (s *SQLiteManifestStore) ListVersions() ([]string, error) {
	rows, err := s.db.Query(`SELECT version FROM dataset_manifests ORDER BY generated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifest versions: %w", err)
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan manifest version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// ListExercisesByTypes returns all persisted exercises of the requested
// types, across every version.
func (s *SQLiteManifestStore) ListExercisesByTypes(types []catalog.NumberType) ([]NumberDictationExercise, error) {
	if len(types) == 0 {
		return []NumberDictationExercise{}, nil
	}

	placeholders := make([]string, len(types))
	args := make([]interface{}, len(types))
	for i, t := range types {
		placeholders[i] = "?"
		args[i] = string(t)
	}

	query := fmt.Sprintf(
		`SELECT id, version_tag, number_type, digits, spoken_chunks, sentence, audio_ref, blueprint_id, voice, created_at
		 FROM dictation_exercises WHERE number_type IN (%s) ORDER BY id`,
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises by types: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// Close releases the database handle.
func (s *SQLiteManifestStore) Close() error {
	return s.db.Close()
}
