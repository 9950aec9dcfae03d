package app

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// SessionRepository abstracts how per-player quiz sessions are stored (in-memory, Redis, etc).
// Get returns domain.ErrSessionNotFound when the player has no session.
type SessionRepository interface {
	Get(ctx context.Context, playerID string) (*quiz.Session, error)
	Save(ctx context.Context, playerID string, session *quiz.Session) error
	Delete(ctx context.Context, playerID string) error
}

// CatalogRepository loads catalog content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

const lockStripes = 64

// QuizService contains the player-facing quiz use cases. Every call
// renders the session after mutating it so transports can push the view.
type QuizService struct {
	sessions   SessionRepository
	catalogs   CatalogRepository
	catalogID  string
	controller *quiz.Controller
	locks      [lockStripes]sync.Mutex
}

func NewQuizService(store SessionRepository, catalogs CatalogRepository, catalogID string, controller *quiz.Controller) *QuizService {
	if controller == nil {
		controller = quiz.NewController(nil)
	}
	return &QuizService{
		sessions:   store,
		catalogs:   catalogs,
		catalogID:  catalogID,
		controller: controller,
	}
}

// Open resumes the player's current attempt or starts a new one.
func (s *QuizService) Open(ctx context.Context, playerID string) (quiz.View, error) {
	unlock := s.lock(playerID)
	defer unlock()

	session, err := s.sessions.Get(ctx, playerID)
	if err == nil {
		return quiz.Render(session), nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return quiz.View{}, err
	}
	return s.startLocked(ctx, playerID)
}

// Select records the player's pending choice for the current question.
func (s *QuizService) Select(ctx context.Context, playerID, option string) (quiz.View, error) {
	return s.mutate(ctx, playerID, func(session *quiz.Session) error {
		return s.controller.SelectOption(session, option)
	})
}

// Next records the answer for the current question and moves on.
func (s *QuizService) Next(ctx context.Context, playerID string) (quiz.View, error) {
	return s.mutate(ctx, playerID, s.controller.Advance)
}

// Retry discards the player's attempt and starts a freshly shuffled one.
func (s *QuizService) Retry(ctx context.Context, playerID string) (quiz.View, error) {
	unlock := s.lock(playerID)
	defer unlock()
	return s.startLocked(ctx, playerID)
}

// Current renders the player's session without changing it.
func (s *QuizService) Current(ctx context.Context, playerID string) (quiz.View, error) {
	unlock := s.lock(playerID)
	defer unlock()

	session, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return quiz.View{}, err
	}
	return quiz.Render(session), nil
}

// Summary returns the results of the player's completed attempt.
func (s *QuizService) Summary(ctx context.Context, playerID string) (domain.Summary, error) {
	unlock := s.lock(playerID)
	defer unlock()

	session, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return domain.Summary{}, err
	}
	return s.controller.Summary(session)
}

// End drops the player's session.
func (s *QuizService) End(ctx context.Context, playerID string) error {
	unlock := s.lock(playerID)
	defer unlock()
	return s.sessions.Delete(ctx, playerID)
}

func (s *QuizService) startLocked(ctx context.Context, playerID string) (quiz.View, error) {
	catalog, err := s.catalogs.GetCatalog(ctx, s.catalogID)
	if err != nil {
		return quiz.View{}, err
	}
	session, err := s.controller.Start(catalog.Questions)
	if err != nil {
		return quiz.View{}, err
	}
	if err := s.sessions.Save(ctx, playerID, session); err != nil {
		return quiz.View{}, err
	}
	return quiz.Render(session), nil
}

func (s *QuizService) mutate(ctx context.Context, playerID string, op func(*quiz.Session) error) (quiz.View, error) {
	unlock := s.lock(playerID)
	defer unlock()

	session, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return quiz.View{}, err
	}
	if err := op(session); err != nil {
		return quiz.View{}, err
	}
	if err := s.sessions.Save(ctx, playerID, session); err != nil {
		return quiz.View{}, err
	}
	return quiz.Render(session), nil
}

// lock serialises operations for one player; players hashing to the same stripe share a mutex.
func (s *QuizService) lock(playerID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(playerID))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
