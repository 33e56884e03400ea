package session

import (
	"slices"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

// ProgressTracker tracks which topics the learner has marked complete.
//
// The tracker does not know the catalogue: it accepts any TopicID, and callers
// that take IDs from user input must check them against the catalogue first.
type ProgressTracker struct {
	state *State
}

// NewProgressTracker returns a tracker over the state's completion set.
func NewProgressTracker(state *State) *ProgressTracker {
	if state.Completed == nil {
		state.Completed = make(CompletionSet)
	}
	return &ProgressTracker{state: state}
}

// Toggle marks id complete, or clears the mark if it was already set.
func (p *ProgressTracker) Toggle(id catalogue.TopicID) {
	if _, ok := p.state.Completed[id]; ok {
		delete(p.state.Completed, id)
		return
	}
	p.state.Completed[id] = struct{}{}
}

// IsComplete reports whether id is marked complete.
func (p *ProgressTracker) IsComplete(id catalogue.TopicID) bool {
	_, ok := p.state.Completed[id]
	return ok
}

// Count returns the number of completed topics.
func (p *ProgressTracker) Count() int {
	return len(p.state.Completed)
}

// CountIn returns the number of completed topics in a category.
func (p *ProgressTracker) CountIn(category string) int {
	n := 0
	for id := range p.state.Completed {
		if id.Category() == category {
			n++
		}
	}
	return n
}

// Completed returns the completed IDs in sorted order.
func (p *ProgressTracker) Completed() []catalogue.TopicID {
	ids := make([]catalogue.TopicID, 0, len(p.state.Completed))
	for id := range p.state.Completed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Reset clears every completion mark.
func (p *ProgressTracker) Reset() {
	clear(p.state.Completed)
}
