package questions

import (
	"errors"
	"fmt"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

// ErrEmptyPool indicates there is nothing to draw from.
var ErrEmptyPool = errors.New("question pool is empty")

// ErrMalformedRecord matches every *MalformedRecordError via errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError identifies a catalogue record whose quiz fields break
// the question/options/answer invariant.
type MalformedRecordError struct {
	ID     catalogue.TopicID
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: %s", e.ID, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
