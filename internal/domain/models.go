package domain

// NotAnswered is recorded when a player moves past a question without choosing.
const NotAnswered = "Not Answered"

// Question models an MCQ question whose answer is one of its options.
type Question struct {
	Category string   `json:"category" yaml:"category" validate:"required"`
	Prompt   string   `json:"prompt" yaml:"prompt" validate:"required"`
	Options  []string `json:"options" yaml:"options" validate:"min=2,max=6,dive,required"`
	Answer   string   `json:"answer" yaml:"answer" validate:"required"`
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Catalog is a named, read-only collection of questions.
type Catalog struct {
	ID        string     `json:"id" yaml:"id"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// AnswerRecord is the outcome of one question, in presentation order.
type AnswerRecord struct {
	Question Question `json:"question"`
	Selected string   `json:"selected"`
}

// IsCorrect reports whether the selection matches the question's answer.
func (r AnswerRecord) IsCorrect() bool {
	return r.Selected == r.Question.Answer
}

// Summary is the read-only result of a completed quiz.
type Summary struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Answers []AnswerRecord `json:"answers"`
}

// Percent returns the score as a percentage of total, 0 for an empty quiz.
func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) * 100 / float64(s.Total)
}
