package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"trivia-quiz-service/internal/domain"
)

var validate = validator.New()

// Validate checks that a catalog can drive a quiz: it must have questions,
// each with 2-6 options, and every answer must be one of its options.
func Validate(c domain.Catalog) error {
	if len(c.Questions) == 0 {
		return domain.ErrInvalidCatalog
	}
	for i, q := range c.Questions {
		if err := validate.Struct(q); err != nil {
			return fmt.Errorf("%w %d (%q): %v", domain.ErrInvalidQuestion, i+1, q.Prompt, err)
		}
		if !q.HasOption(q.Answer) {
			return fmt.Errorf("%w %d (%q): answer %q is not an option", domain.ErrInvalidQuestion, i+1, q.Prompt, q.Answer)
		}
	}
	return nil
}
