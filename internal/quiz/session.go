package quiz

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

// State is the coarse phase of a quiz attempt.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Session is the mutable state of one quiz attempt. Fields are exported so
// stores can snapshot it; mutate it only through a Controller.
type Session struct {
	ID         string                `json:"id"`
	Questions  []domain.Question     `json:"questions"`
	Current    int                   `json:"current"`
	Pending    *string               `json:"pending,omitempty"`
	History    []domain.AnswerRecord `json:"history"`
	Score      int                   `json:"score"`
	Complete   bool                  `json:"complete"`
	StartedAt  time.Time             `json:"startedAt"`
	FinishedAt time.Time             `json:"finishedAt"`
}

// State reports whether the attempt is still running.
func (s *Session) State() State {
	if s.Complete {
		return StateComplete
	}
	return StateInProgress
}

// Total is the number of questions in this attempt.
func (s *Session) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question awaiting an answer, false once complete.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	if s.Complete || s.Current >= len(s.Questions) {
		return domain.Question{}, false
	}
	return s.Questions[s.Current], true
}

// PendingSelection returns the in-progress choice for the current question.
func (s *Session) PendingSelection() (string, bool) {
	if s.Pending == nil {
		return "", false
	}
	return *s.Pending, true
}
