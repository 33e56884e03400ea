package session

import "errors"

var (
	// ErrNoActiveCard is returned when a flashcard operation needs a drawn card.
	ErrNoActiveCard = errors.New("no active flashcard")

	// ErrNoActiveQuestion is returned when an answer is submitted before a
	// question was drawn.
	ErrNoActiveQuestion = errors.New("no active question")
)
