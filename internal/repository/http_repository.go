package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/datastore"
	"numbers-dictation-platform/backend/internal/logging"
)

// HTTPExerciseRepository loads a pre-generated dataset manifest from a
// static HTTP endpoint (typically a raw GitHub URL) and serves exercises
// from an in-process cache.
//
// Expected layout: <baseURL>/<lang>/<version>/manifest.json
type HTTPExerciseRepository struct {
	baseURL string
	version string
	lang    string
	client  *http.Client
	log     *logging.Logger

	mu    sync.Mutex
	cache []datastore.NumberDictationExercise
}

// NewHTTPExerciseRepository builds a repository for one dataset version.
func NewHTTPExerciseRepository(baseURL, version, lang string, log *logging.Logger) (*HTTPExerciseRepository, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL must be provided")
	}
	if version == "" {
		return nil, fmt.Errorf("version must be provided")
	}
	if lang == "" {
		lang = "fr"
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPExerciseRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		lang:    lang,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

func (r *HTTPExerciseRepository) manifestURL() string {
	return fmt.Sprintf("%s/%s/%s/manifest.json", r.baseURL, r.lang, r.version)
}

// loadAll fetches and caches the manifest. The cache is never invalidated:
// published datasets are immutable, and the read contract only requires
// stability within a process lifetime.
func (r *HTTPExerciseRepository) loadAll() ([]datastore.NumberDictationExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	url := r.manifestURL()
	r.log.Info("fetching dataset manifest", "url", url)

	resp, err := r.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest from %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest body from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest request to %s returned status %d", url, resp.StatusCode)
	}

	var manifest datastore.DatasetManifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		// A short body preview beats a bare unmarshal error when someone
		// points the base URL at an HTML 404 page.
		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		preview = strings.ReplaceAll(preview, "\n", "\\n")
		r.log.Error("failed to parse dataset manifest", "url", url, "body_preview", preview)
		return nil, fmt.Errorf("failed to parse dataset manifest at %s: %w (body preview: %q)", url, err, preview)
	}

	r.cache = manifest.Exercises
	return r.cache, nil
}

// ListByTypes returns all cached exercises of the requested types.
func (r *HTTPExerciseRepository) ListByTypes(types []catalog.NumberType) ([]datastore.NumberDictationExercise, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	wanted := make(map[catalog.NumberType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	out := []datastore.NumberDictationExercise{}
	for _, ex := range all {
		if wanted[ex.NumberType] {
			out = append(out, ex)
		}
	}
	return out, nil
}
