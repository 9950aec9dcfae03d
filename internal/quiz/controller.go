package quiz

import (
	"time"

	"github.com/google/uuid"
	"trivia-quiz-service/internal/domain"
)

// Controller drives quiz attempts from start to completion.
type Controller struct {
	src Source
	now func() time.Time
}

// NewController builds a controller that shuffles with src (DefaultSource when nil).
func NewController(src Source) *Controller {
	return NewControllerWithClock(src, time.Now)
}

// NewControllerWithClock allows deterministic timestamps in tests.
func NewControllerWithClock(src Source, now func() time.Time) *Controller {
	if src == nil {
		src = DefaultSource
	}
	return &Controller{src: src, now: now}
}

// Start begins a new attempt over a random permutation of catalog.
func (c *Controller) Start(catalog []domain.Question) (*Session, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrInvalidCatalog
	}
	return &Session{
		ID:        uuid.NewString(),
		Questions: permute(catalog, c.src),
		History:   make([]domain.AnswerRecord, 0, len(catalog)),
		StartedAt: c.now(),
	}, nil
}

// Reset discards session and starts over with a fresh permutation.
func (c *Controller) Reset(_ *Session, catalog []domain.Question) (*Session, error) {
	return c.Start(catalog)
}

// SelectOption records the in-progress choice for the current question.
// Options the question does not offer are rejected and the previous choice is kept.
func (c *Controller) SelectOption(s *Session, option string) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return domain.ErrSessionComplete
	}
	if !q.HasOption(option) {
		return domain.ErrInvalidOption
	}
	s.Pending = &option
	return nil
}

// Advance records the answer for the current question and moves on.
// Advancing a completed session fails and leaves it unchanged.
func (c *Controller) Advance(s *Session) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return domain.ErrSessionComplete
	}

	selected := domain.NotAnswered
	if s.Pending != nil {
		selected = *s.Pending
	}
	record := domain.AnswerRecord{Question: q, Selected: selected}
	s.History = append(s.History, record)
	if record.IsCorrect() {
		s.Score++
	}
	s.Pending = nil
	s.Current++

	if s.Current == len(s.Questions) {
		s.Complete = true
		s.FinishedAt = c.now()
	}
	return nil
}

// Summary returns the results of a completed attempt.
func (c *Controller) Summary(s *Session) (domain.Summary, error) {
	if !s.Complete {
		return domain.Summary{}, domain.ErrSessionInProgress
	}
	answers := make([]domain.AnswerRecord, len(s.History))
	copy(answers, s.History)
	return domain.Summary{
		Score:   s.Score,
		Total:   len(s.Questions),
		Answers: answers,
	}, nil
}
