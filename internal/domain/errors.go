package domain

import "errors"

var (
	// ErrInvalidCatalog is returned when a quiz is started from an empty catalog.
	ErrInvalidCatalog = errors.New("catalog has no questions")
	// ErrInvalidQuestion indicates a catalog entry is malformed.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrInvalidOption indicates a selection that is not one of the current question's options.
	ErrInvalidOption = errors.New("option not offered for current question")
	// ErrSessionComplete is returned when acting on a finished quiz.
	ErrSessionComplete = errors.New("quiz session already complete")
	// ErrSessionInProgress is returned when a summary is requested before the last question.
	ErrSessionInProgress = errors.New("quiz session still in progress")
	// ErrSessionNotFound is returned when a player has no quiz session.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrCatalogNotFound indicates the catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
)
