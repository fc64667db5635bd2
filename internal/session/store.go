// Package session holds the server-side session table: an in-memory map from
// opaque tokens to user ids. Sessions live until logout or process exit; there
// is no expiry and no persistence.
package session

import (
	"sync"

	"github.com/google/uuid"
)

const CookieName = "session_token"

type Store struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]uint)}
}

// Create issues a fresh opaque token bound to userID.
func (s *Store) Create(userID uint) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token
}

func (s *Store) UserID(token string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.sessions[token]
	return userID, ok
}

// Delete is idempotent: removing an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
