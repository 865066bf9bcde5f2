// Package store provides session storage backends for coldcalc.
//
// It includes an in-memory store for tests and single-process use, plus
// SQLite and PostgreSQL backed stores. All implementations satisfy the
// Store interface; per-user serialization is the caller's responsibility.
package store

import (
	"log/slog"
	"sync"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Store is the session store collaborator contract: get, put, and clear of
// one flow-state record per user. Callers must serialize access per user;
// the store itself only guarantees that individual operations are safe
// under concurrent use.
type Store interface {
	// GetSession retrieves the session for a user, or (nil, nil) when absent.
	GetSession(userID string) (*models.Session, error)

	// SaveSession stores or replaces the session for session.UserID.
	SaveSession(session models.Session) error

	// DeleteSession removes the session for a user. Deleting an absent
	// session is not an error.
	DeleteSession(userID string) error

	// Close releases any underlying resources.
	Close() error
}

// InMemoryStore keeps sessions in a mutex-guarded map.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewInMemoryStore creates an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]models.Session)}
}

// GetSession retrieves the session for a user, or (nil, nil) when absent.
func (s *InMemoryStore) GetSession(userID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	// Copy the answer map so callers cannot mutate stored state in place.
	copied := session
	if session.Answers != nil {
		copied.Answers = make(map[string]models.Answer, len(session.Answers))
		for k, v := range session.Answers {
			copied.Answers[k] = v
		}
	}
	return &copied, nil
}

// SaveSession stores or replaces the session.
func (s *InMemoryStore) SaveSession(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
	slog.Debug("InMemoryStore SaveSession succeeded", "userID", session.UserID, "step", session.CurrentStep)
	return nil
}

// DeleteSession removes the session for a user.
func (s *InMemoryStore) DeleteSession(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	slog.Debug("InMemoryStore DeleteSession succeeded", "userID", userID)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error {
	return nil
}
