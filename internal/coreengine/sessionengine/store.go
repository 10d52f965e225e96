package sessionengine

import "sync"

// SessionStore keeps live sessions addressable by id. The interface exists
// so that a shared store (e.g. a keyed external cache) can replace the
// in-memory one when the service scales horizontally.
type SessionStore interface {
	Save(session *NumberDictationSession)
	Get(id string) (*NumberDictationSession, bool)
	Delete(id string)
}

// InMemorySessionStore is the default single-process store. Sessions are
// lost on restart, which is an accepted property of the runtime model.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*NumberDictationSession
}

// NewInMemorySessionStore returns an empty store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]*NumberDictationSession)}
}

func (s *InMemorySessionStore) Save(session *NumberDictationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *InMemorySessionStore) Get(id string) (*NumberDictationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *InMemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
