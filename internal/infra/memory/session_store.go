package memory

import (
	"context"
	"sync"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*quiz.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*quiz.Session),
	}
}

func (s *SessionStore) Get(_ context.Context, playerID string) (*quiz.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Save(_ context.Context, playerID string, session *quiz.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[playerID] = session
	return nil
}

func (s *SessionStore) Delete(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, playerID)
	return nil
}
