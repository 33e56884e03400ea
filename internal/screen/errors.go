package screen

import (
	"errors"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

// ErrorMessage returns the learner-facing text for an error raised by the
// session components.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrNoActiveCard):
		return "No hay ninguna tarjeta activa. Sacá una tarjeta nueva."
	case errors.Is(err, session.ErrNoActiveQuestion):
		return "No hay ninguna pregunta activa. Pasá a la siguiente pregunta."
	case errors.Is(err, questions.ErrEmptyPool):
		return "El catálogo no tiene preguntas."
	default:
		return "Error inesperado: " + err.Error()
	}
}
