package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// SessionStore is a Redis implementation of app.SessionRepository.
// Each player's session is a JSON snapshot whose TTL is refreshed on every
// save, so abandoned attempts expire on their own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, playerID string) (*quiz.Session, error) {
	raw, err := s.client.Get(ctx, s.key(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var session quiz.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, playerID string, session *quiz.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(playerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, playerID string) error {
	return s.client.Del(ctx, s.key(playerID)).Err()
}

func (s *SessionStore) key(playerID string) string {
	return "quiz:session:" + playerID
}
