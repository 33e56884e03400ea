package session

import (
	"time"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

// CategoryProgress is the completion count for one category.
type CategoryProgress struct {
	Category  string
	Completed int
	Total     int
}

// Percent returns the completed fraction in [0, 1].
func (c CategoryProgress) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Total)
}

// Summary holds the data displayed on progress views.
type Summary struct {
	Duration   time.Duration
	Completed  int
	Total      int
	Score      int
	Attempts   int
	Correct    int
	Accuracy   float64
	Categories []CategoryProgress
}

// BuildSummary creates a Summary of the session against the catalogue.
// Completion marks for IDs the catalogue does not know are not counted.
func BuildSummary(s *Session, c *catalogue.Catalogue, now time.Time) *Summary {
	sum := &Summary{
		Duration: now.Sub(s.State.CreatedAt),
		Total:    c.Len(),
		Score:    s.Quiz.Score(),
		Attempts: s.Quiz.Attempts(),
		Correct:  s.Quiz.CorrectAnswers(),
	}

	for _, cat := range c.Categories() {
		cp := CategoryProgress{Category: cat.Name, Total: len(cat.Topics)}
		for _, rec := range cat.Topics {
			if s.Progress.IsComplete(rec.ID()) {
				cp.Completed++
			}
		}
		sum.Completed += cp.Completed
		sum.Categories = append(sum.Categories, cp)
	}

	if sum.Attempts > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Attempts)
	}
	return sum
}
