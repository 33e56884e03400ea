package screen

import (
	"log/slog"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/demo"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

// Env is what every screen of the terminal host works against: the content,
// the question pool, the demo renderers and the learner's one session.
type Env struct {
	Catalogue *catalogue.Catalogue
	Pool      questions.Pool
	Demos     *demo.Registry
	Session   *session.Session
	Logger    *slog.Logger
}

// Log returns the env's logger, or one that discards when none is set.
func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
