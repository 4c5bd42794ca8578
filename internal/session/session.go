// Package session keeps the per-chat progress of the guided
// add-birthday conversation. Sessions live in process memory only.
package session

import "sync"

// Step names the field the conversation is waiting for.
type Step int

const (
	AwaitingName Step = iota
	AwaitingDate
)

// Session is one in-progress add-birthday dialog. Name is set once the
// name step completes.
type Session struct {
	Step Step
	Name string
}

// Store maps chat ids to their active session. Telegram delivers
// updates concurrently, so the map is guarded by a mutex.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]Session)}
}

// Get returns the active session for a chat.
func (s *Store) Get(chatID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Set inserts or replaces the session for a chat.
func (s *Store) Set(chatID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sess
}

// Delete ends the session for a chat. Deleting a chat with no session
// is a no-op.
func (s *Store) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
