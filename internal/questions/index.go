package questions

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

// minOptions is the smallest number of choices a question may offer.
const minOptions = 2

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG generator. A zero seed is replaced by the
// current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Pool is the ordered sequence of quizzable records.
type Pool []catalogue.TopicRecord

// Build flattens the catalogue into its quizzable records, in declaration
// order. The first record that breaks the quiz invariant aborts the build
// with a *MalformedRecordError.
func Build(c *catalogue.Catalogue) (Pool, error) {
	var pool Pool
	for _, rec := range c.Records() {
		if err := checkRecord(rec); err != nil {
			return nil, err
		}
		if rec.Quizzable() {
			pool = append(pool, rec)
		}
	}
	return pool, nil
}

func checkRecord(rec catalogue.TopicRecord) error {
	malformed := func(reason string) error {
		return &MalformedRecordError{ID: rec.ID(), Reason: reason}
	}

	if !rec.Quizzable() {
		if len(rec.Options) > 0 || rec.CorrectAnswer != "" {
			return malformed("options or answer given without a question")
		}
		return nil
	}

	if len(rec.Options) < minOptions {
		return malformed(fmt.Sprintf("question needs at least %d options", minOptions))
	}
	if rec.CorrectAnswer == "" {
		return malformed("question has no answer")
	}
	seen := make(map[string]bool, len(rec.Options))
	for _, opt := range rec.Options {
		if seen[opt] {
			return malformed(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = true
	}
	if !seen[rec.CorrectAnswer] {
		return malformed(fmt.Sprintf("answer %q is not one of the options", rec.CorrectAnswer))
	}
	return nil
}

// Draw picks one record uniformly at random. The pool is shared between
// sessions, so the record is returned as a copy.
func (p Pool) Draw(src Source) (catalogue.TopicRecord, error) {
	if len(p) == 0 {
		return catalogue.TopicRecord{}, ErrEmptyPool
	}
	return p[src.IntN(len(p))].Clone(), nil
}

// Contains reports whether id is in the pool.
func (p Pool) Contains(id catalogue.TopicID) bool {
	return slices.ContainsFunc(p, func(r catalogue.TopicRecord) bool { return r.ID() == id })
}

// IDs returns the identifiers of the pool in order.
func (p Pool) IDs() []catalogue.TopicID {
	ids := make([]catalogue.TopicID, len(p))
	for i, r := range p {
		ids[i] = r.ID()
	}
	return ids
}
