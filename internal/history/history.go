package history

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps an ordered list of searched company names per session.
// Entries are deduplicated only against the immediately preceding entry and
// live until the session is cleared.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]string
}

// NewStore creates an empty session history store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]string)}
}

// NewSession allocates a fresh session ID.
func (s *Store) NewSession() string {
	return uuid.NewString()
}

// Append records a name unless it equals the session's last entry.
func (s *Store) Append(session, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := s.sessions[session]
	if len(names) > 0 && names[len(names)-1] == name {
		return
	}
	s.sessions[session] = append(names, name)
}

// List returns a copy of the session's names in insertion order.
func (s *Store) List(session string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := s.sessions[session]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Clear empties the session's history.
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
}
