package datastore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"numbers-dictation-platform/backend/internal/catalog"
)

// PostgresManifestStore persists dataset manifests and their exercises in
// PostgreSQL. Exercises are denormalized into their own table so that the
// session engine can filter by number type without loading whole manifests.
type PostgresManifestStore struct {
	db *sql.DB
}

// NewPostgresManifestStore opens a connection with the given DSN and ensures
// the schema exists.
func NewPostgresManifestStore(dataSourceName string) (*PostgresManifestStore, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	store := &PostgresManifestStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresManifestStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dataset_manifests (
		version TEXT PRIMARY KEY,
		generated_at TIMESTAMPTZ NOT NULL,
		exercise_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dictation_exercises (
		id TEXT PRIMARY KEY,
		version_tag TEXT NOT NULL REFERENCES dataset_manifests(version),
		number_type TEXT NOT NULL,
		digits TEXT NOT NULL,
		spoken_chunks JSONB NOT NULL,
		sentence TEXT NOT NULL,
		audio_ref TEXT NOT NULL,
		blueprint_id TEXT NOT NULL,
		voice TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_number_type ON dictation_exercises(number_type);
	CREATE INDEX IF NOT EXISTS idx_exercises_version_tag ON dictation_exercises(version_tag);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create manifest schema: %w", err)
	}
	return nil
}

// SaveManifest writes a manifest and its exercises in one transaction.
// A version tag can only be written once; a second write for the same
// version fails rather than mutating published exercises.
func (s *PostgresManifestStore) SaveManifest(manifest *DatasetManifest) error {
	if manifest == nil {
		return errors.New("manifest must not be nil")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM dataset_manifests WHERE version = $1)`, manifest.Version).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check manifest version %s: %w", manifest.Version, err)
	}
	if exists {
		return fmt.Errorf("manifest version %s already exists and is frozen", manifest.Version)
	}

	_, err = tx.Exec(
		`INSERT INTO dataset_manifests (version, generated_at, exercise_count) VALUES ($1, $2, $3)`,
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
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			ex.ID, ex.VersionTag, string(ex.NumberType), ex.Digits, chunksJSON,
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

// LoadManifest returns the manifest for a version. An unknown version reads
// back as an empty manifest with zero exercises.
func (s *PostgresManifestStore) LoadManifest(version string) (*DatasetManifest, error) {
	manifest := &DatasetManifest{Version: version, Exercises: []NumberDictationExercise{}}

	err := s.db.QueryRow(
		`SELECT generated_at, exercise_count FROM dataset_manifests WHERE version = $1`,
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
		 FROM dictation_exercises WHERE version_tag = $1 ORDER BY id`,
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
func (s *PostgresManifestStore) ListVersions() ([]string, error) {
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

// ListExercisesByTypes returns all persisted exercises, any version, whose
// number type is in the requested set.
func (s *PostgresManifestStore) ListExercisesByTypes(types []catalog.NumberType) ([]NumberDictationExercise, error) {
	if len(types) == 0 {
		return []NumberDictationExercise{}, nil
	}

	placeholders := make([]string, len(types))
	args := make([]interface{}, len(types))
	for i, t := range types {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
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

// Close releases the underlying connection pool.
func (s *PostgresManifestStore) Close() error {
	return s.db.Close()
}

func scanExercises(rows *sql.Rows) ([]NumberDictationExercise, error) {
	exercises := []NumberDictationExercise{}
	for rows.Next() {
		var (
			ex         NumberDictationExercise
			numberType string
			chunksJSON []byte
			createdAt  time.Time
		)
		if err := rows.Scan(
			&ex.ID, &ex.VersionTag, &numberType, &ex.Digits, &chunksJSON,
			&ex.Sentence, &ex.AudioRef, &ex.BlueprintID, &ex.Voice, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise row: %w", err)
		}
		if err := json.Unmarshal(chunksJSON, &ex.SpokenChunks); err != nil {
			return nil, fmt.Errorf("failed to decode spoken chunks for exercise %s: %w", ex.ID, err)
		}
		ex.NumberType = catalog.NumberType(numberType)
		ex.CreatedAt = createdAt
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during exercise rows iteration: %w", err)
	}
	return exercises, nil
}
