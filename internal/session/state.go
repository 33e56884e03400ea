package session

import (
	"time"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

// CompletionSet holds the topics a learner has marked as done.
type CompletionSet map[catalogue.TopicID]struct{}

// FlashcardPhase represents where the flashcard drill is in its cycle.
type FlashcardPhase int

const (
	FlashcardEmpty        FlashcardPhase = iota // No card drawn yet
	FlashcardShowQuestion                       // Card drawn, answer hidden
	FlashcardShowAnswer                         // Answer revealed
)

// QuizPhase represents where the multiple-choice quiz is in its cycle.
type QuizPhase int

const (
	QuizEmpty    QuizPhase = iota // No question drawn yet
	QuizAwaiting                  // Question drawn, accepting answers
)

// FlashcardState is the current card and whether its answer is showing.
// Revealed is only ever true while Current is set.
type FlashcardState struct {
	Current  *catalogue.TopicRecord
	Revealed bool
}

// QuizState is the current question plus informational answer counters.
type QuizState struct {
	Current *catalogue.TopicRecord

	// Attempts, Correct and Streak count submissions this session. They are
	// never used for scoring.
	Attempts int
	Correct  int
	Streak   int
}

// State is the session-scoped store. Every mutable entity of one learner's
// session lives here; the components hold a pointer to it and never copy it.
type State struct {
	// ID is the UUID for this session.
	ID string

	CreatedAt time.Time
	LastSeen  time.Time

	// Completed is the set of topics marked done.
	Completed CompletionSet

	// Score is the quiz score. It never goes below zero.
	Score int

	Flashcard FlashcardState
	Quiz      QuizState
}

// NewState creates an empty state for a new session.
func NewState(id string, now time.Time) *State {
	return &State{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
		Completed: make(CompletionSet),
	}
}
