package quiz

import (
	"fmt"

	"trivia-quiz-service/internal/domain"
)

const (
	labelNext   = "Next Question"
	labelFinish = "Finish Quiz"
)

// View is what a presentation layer renders after every operation.
// Exactly one of Question and Result is set.
type View struct {
	SessionID string        `json:"sessionId"`
	State     State         `json:"state"`
	Question  *QuestionView `json:"question,omitempty"`
	Result    *ResultView   `json:"result,omitempty"`
}

// QuestionView describes the question awaiting an answer.
type QuestionView struct {
	Category string       `json:"category"`
	Prompt   string       `json:"prompt"`
	Options  []OptionView `json:"options"`
	Position int          `json:"position"`
	Total    int          `json:"total"`
	Progress string       `json:"progress"`
	Action   string       `json:"action"`
	Selected bool         `json:"selected"`
}

// OptionView is a single choice button.
type OptionView struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// ResultView is the completed-quiz summary with a per-question review.
type ResultView struct {
	Score   int           `json:"score"`
	Total   int           `json:"total"`
	Percent float64       `json:"percent"`
	Review  []ReviewEntry `json:"review"`
}

// ReviewEntry shows one answer; CorrectAnswer is empty when the player was right.
type ReviewEntry struct {
	Number        int    `json:"number"`
	Prompt        string `json:"prompt"`
	Category      string `json:"category"`
	Selected      string `json:"selected"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}

// Render projects the session into a view.
func Render(s *Session) View {
	v := View{SessionID: s.ID, State: s.State()}
	if s.Complete {
		v.Result = renderResult(s)
		return v
	}
	q, _ := s.CurrentQuestion()
	pending, hasPending := s.PendingSelection()

	options := make([]OptionView, len(q.Options))
	for i, o := range q.Options {
		options[i] = OptionView{Text: o, Selected: hasPending && o == pending}
	}
	action := labelNext
	if s.Current+1 == s.Total() {
		action = labelFinish
	}
	v.Question = &QuestionView{
		Category: q.Category,
		Prompt:   q.Prompt,
		Options:  options,
		Position: s.Current + 1,
		Total:    s.Total(),
		Progress: fmt.Sprintf("%d of %d", s.Current+1, s.Total()),
		Action:   action,
		Selected: hasPending,
	}
	return v
}

func renderResult(s *Session) *ResultView {
	summary := domain.Summary{Score: s.Score, Total: s.Total(), Answers: s.History}
	review := make([]ReviewEntry, len(s.History))
	for i, r := range s.History {
		entry := ReviewEntry{
			Number:   i + 1,
			Prompt:   r.Question.Prompt,
			Category: r.Question.Category,
			Selected: r.Selected,
			Correct:  r.IsCorrect(),
		}
		if !entry.Correct {
			entry.CorrectAnswer = r.Question.Answer
		}
		review[i] = entry
	}
	return &ResultView{
		Score:   summary.Score,
		Total:   summary.Total,
		Percent: summary.Percent(),
		Review:  review,
	}
}
