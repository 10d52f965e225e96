// Package sessionmanagement exposes the learner-facing dictation session
// API: create a session, fetch the next exercise, submit answers, read
// the summary, and stream exercise audio.
package sessionmanagement

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/coreengine/sessionengine"
	"numbers-dictation-platform/backend/internal/logging"
	"numbers-dictation-platform/backend/internal/objectstore"
)

// audioProxyPrefix is where StreamAudio is mounted; the fallback audio
// URL points here when no public base URL is configured.
const audioProxyPrefix = "/web/numbers/audio/"

// defaultSessionTypes back the legacy request shape that omits types.
var defaultSessionTypes = []catalog.NumberType{
	catalog.TypePhone,
	catalog.TypeYear,
	catalog.TypePrice,
	catalog.TypeTime,
}

// SessionHandlers serves the learner session endpoints.
type SessionHandlers struct {
	engine       *sessionengine.Engine
	sessions     sessionengine.SessionStore
	audioStorage objectstore.AudioStorage
	audioBaseURL string
	log          *logging.Logger
}

// NewSessionHandlers wires the session endpoints. audioBaseURL may be
// empty, in which case audio URLs fall back to the backend proxy route.
func NewSessionHandlers(
	engine *sessionengine.Engine,
	sessions sessionengine.SessionStore,
	audioStorage objectstore.AudioStorage,
	audioBaseURL string,
	log *logging.Logger,
) *SessionHandlers {
	if log == nil {
		log = logging.NewNop()
	}
	return &SessionHandlers{
		engine:       engine,
		sessions:     sessions,
		audioStorage: audioStorage,
		audioBaseURL: audioBaseURL,
		log:          log,
	}
}

// CreateSessionRequest is the payload for POST /web/numbers/sessions.
type CreateSessionRequest struct {
	Types []string `json:"types"`
	Count int      `json:"count"`
}

// CreateSession handles POST /web/numbers/sessions.
func (h *SessionHandlers) CreateSession(c *gin.Context) {
	// An empty body falls back to the default types and count.
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if req.Count == 0 {
		req.Count = 5
	}

	var types []catalog.NumberType
	var err error
	if len(req.Types) > 0 {
		types, err = catalog.ParseNumberTypes(req.Types)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		types = defaultSessionTypes
	}

	session, err := h.engine.CreateSession(types, req.Count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.sessions.Save(session)

	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}
	h.log.Info("session created", "session_id", session.ID, "count", req.Count)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"types":      typeStrings,
		"count":      req.Count,
	})
}

// NextExercise handles GET /web/numbers/sessions/:id/next. When every
// exercise is answered it reports completion along with the summary.
func (h *SessionHandlers) NextExercise(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	state := sessionengine.NextExercise(session)
	if state == nil {
		c.JSON(http.StatusOK, gin.H{
			"completed": true,
			"summary":   sessionengine.ComputeSummary(session),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercise_id": state.ID,
		"number_type": string(state.Exercise.NumberType),
		"audio_ref":   state.Exercise.AudioRef,
		"audio_url":   h.buildAudioURL(state.Exercise.AudioRef),
	})
}

// SubmitAnswerRequest is the payload for POST .../answers.
type SubmitAnswerRequest struct {
	ExerciseID string `json:"exercise_id" binding:"required"`
	Answer     string `json:"answer"`
}

// SubmitAnswer handles POST /web/numbers/sessions/:id/answers. Each
// exercise accepts exactly one answer.
func (h *SessionHandlers) SubmitAnswer(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	state, result, err := sessionengine.ApplyAnswer(session, req.ExerciseID, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.sessions.Save(session)

	errors := result.Errors
	if errors == nil {
		errors = []sessionengine.DigitError{}
	}
	c.JSON(http.StatusOK, gin.H{
		"exercise_id": state.ID,
		"correct":     result.IsCorrect,
		"errors":      errors,
	})
}

// GetSummary handles GET /web/numbers/sessions/:id/summary.
func (h *SessionHandlers) GetSummary(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionengine.ComputeSummary(session))
}

// StreamAudio handles GET /web/numbers/audio/*ref by streaming the
// object from audio storage.
func (h *SessionHandlers) StreamAudio(c *gin.Context) {
	ref := strings.TrimPrefix(c.Param("ref"), "/")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio reference is required"})
		return
	}
	if h.audioStorage == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audio storage not configured"})
		return
	}

	reader, size, err := h.audioStorage.GetAudioReader(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audio not found"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, size, "audio/mpeg", reader, nil)
}

// buildAudioURL turns a stored audio_ref into a client-facing URL.
//
// Absolute URLs pass through untouched. With a configured public base
// URL the ref is joined onto it. Otherwise the backend proxy route
// serves the bytes itself.
func (h *SessionHandlers) buildAudioURL(audioRef string) string {
	if audioRef == "" {
		return ""
	}
	if strings.HasPrefix(audioRef, "http://") || strings.HasPrefix(audioRef, "https://") {
		return audioRef
	}
	if h.audioBaseURL != "" {
		return strings.TrimRight(h.audioBaseURL, "/") + "/" + strings.TrimLeft(audioRef, "/")
	}
	if !strings.HasPrefix(audioRef, "/") {
		return audioProxyPrefix + audioRef
	}
	return audioRef
}
