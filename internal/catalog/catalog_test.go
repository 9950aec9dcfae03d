package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trivia-quiz-service/internal/domain"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultID, c.ID)
	assert.Len(t, c.Questions, 10)
	require.NoError(t, Validate(c))
}

func TestValidate(t *testing.T) {
	valid := domain.Question{Category: "Math", Prompt: "2+2?", Options: []string{"3", "4"}, Answer: "4"}

	tests := []struct {
		name    string
		mutate  func(q *domain.Question)
		wantErr error
	}{
		{"valid", func(q *domain.Question) {}, nil},
		{"missing prompt", func(q *domain.Question) { q.Prompt = "" }, domain.ErrInvalidQuestion},
		{"missing category", func(q *domain.Question) { q.Category = "" }, domain.ErrInvalidQuestion},
		{"one option", func(q *domain.Question) { q.Options = []string{"4"} }, domain.ErrInvalidQuestion},
		{"seven options", func(q *domain.Question) { q.Options = []string{"1", "2", "3", "4", "5", "6", "7"} }, domain.ErrInvalidQuestion},
		{"blank option", func(q *domain.Question) { q.Options = []string{"", "4"} }, domain.ErrInvalidQuestion},
		{"answer not offered", func(q *domain.Question) { q.Answer = "5" }, domain.ErrInvalidQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			tt.mutate(&q)
			err := Validate(domain.Catalog{ID: "c", Questions: []domain.Question{q}})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	require.ErrorIs(t, Validate(domain.Catalog{ID: "empty"}), domain.ErrInvalidCatalog)
}

const sampleYAML = `
id: science
questions:
  - category: Science
    prompt: Which planet is known as the Red Planet?
    options: [Earth, Mars]
    answer: Mars
  - category: Math
    prompt: What is 2 + 2?
    options: ["3", "4", "5"]
    answer: "4"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(writeFile(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "science", c.ID)
	require.Len(t, c.Questions, 2)
	assert.Equal(t, []string{"3", "4", "5"}, c.Questions[1].Options)
	assert.Equal(t, "4", c.Questions[1].Answer)
}

func TestLoadFileDefaultsID(t *testing.T) {
	c, err := LoadFile(writeFile(t, "questions:\n  - {category: A, prompt: B, options: [x, y], answer: x}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultID, c.ID)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadFile(writeFile(t, "id: empty\nquestions: []\n"))
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = LoadFile(writeFile(t, "questions: [[["))
	require.Error(t, err)
}

func TestFileLoader(t *testing.T) {
	loader := NewFileLoader(writeFile(t, sampleYAML))

	c, err := loader.LoadCatalog(context.Background(), "science")
	require.NoError(t, err)
	assert.Len(t, c.Questions, 2)

	_, err = loader.LoadCatalog(context.Background(), "history")
	require.ErrorIs(t, err, domain.ErrCatalogNotFound)
}
