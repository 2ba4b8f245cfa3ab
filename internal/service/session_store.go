package service

import (
	"strings"
	"sync"
	"time"

	"persona-onboarding/internal/domain"
)

// SessionStore guarda las sesiones vivas por id. Las sesiones son
// efímeras: expiran por TTL y se descartan sin limpieza adicional.
type SessionStore interface {
	Put(session *domain.Session) error
	Get(id string) (*domain.Session, bool)
	Delete(id string)
}

type memorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*domain.Session
	expires  map[string]time.Time
}

// NewMemorySessionStore crea el store en memoria usado en producción;
// cada sesión pertenece a un único respondente y no cruza procesos.
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &memorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]*domain.Session),
		expires:  make(map[string]time.Time),
	}
}

func (s *memorySessionStore) Put(session *domain.Session) error {
	if session == nil || strings.TrimSpace(session.ID) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	s.expires[session.ID] = time.Now().UTC().Add(s.ttl)
	return nil
}

func (s *memorySessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().UTC().After(s.expires[id]) {
		delete(s.sessions, id)
		delete(s.expires, id)
		return nil, false
	}
	return session, true
}

func (s *memorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.expires, id)
}
