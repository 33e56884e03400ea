package session

import (
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

// Flashcards drives the draw / reveal / advance cycle over the question pool.
type Flashcards struct {
	state *State
}

// NewFlashcards returns a flashcard drill over the state's flashcard slot.
func NewFlashcards(state *State) *Flashcards {
	return &Flashcards{state: state}
}

// DrawRandom replaces the current card with a random pick from pool and hides
// its answer. Sampling is with replacement, so the same card may come back.
func (f *Flashcards) DrawRandom(pool questions.Pool, src questions.Source) error {
	rec, err := pool.Draw(src)
	if err != nil {
		return err
	}
	f.state.Flashcard = FlashcardState{Current: &rec}
	return nil
}

// Reveal shows the current card's answer.
func (f *Flashcards) Reveal() error {
	if f.state.Flashcard.Current == nil {
		return ErrNoActiveCard
	}
	f.state.Flashcard.Revealed = true
	return nil
}

// Advance moves on to a new random card.
func (f *Flashcards) Advance(pool questions.Pool, src questions.Source) error {
	return f.DrawRandom(pool, src)
}

// Current returns the card being shown, if any.
func (f *Flashcards) Current() (catalogue.TopicRecord, bool) {
	if f.state.Flashcard.Current == nil {
		return catalogue.TopicRecord{}, false
	}
	return *f.state.Flashcard.Current, true
}

// Revealed reports whether the current card's answer is showing.
func (f *Flashcards) Revealed() bool {
	return f.state.Flashcard.Revealed
}

// Phase returns the drill's position in its cycle.
func (f *Flashcards) Phase() FlashcardPhase {
	switch {
	case f.state.Flashcard.Current == nil:
		return FlashcardEmpty
	case f.state.Flashcard.Revealed:
		return FlashcardShowAnswer
	default:
		return FlashcardShowQuestion
	}
}
