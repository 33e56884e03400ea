package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

// Session bundles one learner's state with the components that operate on it.
// A Session is not safe for concurrent use; hosts feed it one action at a time.
type Session struct {
	State      *State
	Progress   *ProgressTracker
	Flashcards *Flashcards
	Quiz       *Quiz

	// Source is this session's randomness for flashcard and quiz draws.
	Source questions.Source
}

// New creates a session with a fresh ID and empty state.
func New(src questions.Source) *Session {
	return NewWithState(NewState(uuid.New().String(), time.Now()), src)
}

// NewWithState wires the components to an existing state.
func NewWithState(state *State, src questions.Source) *Session {
	return &Session{
		State:      state,
		Progress:   NewProgressTracker(state),
		Flashcards: NewFlashcards(state),
		Quiz:       NewQuiz(state),
		Source:     src,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.State.ID
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.State.LastSeen = now
}

// IdleFor returns how long the session has gone without activity.
func (s *Session) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.State.LastSeen)
}
