package progress

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/demo"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

func newTestEnv(t *testing.T) *screen.Env {
	t.Helper()
	return &screen.Env{
		Catalogue: catalogue.Default(),
		Demos:     demo.Default(),
		Session:   session.New(questions.NewSource(1)),
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// completeFirst marks the first n topics of the first category complete.
func completeFirst(env *screen.Env, n int) {
	for _, rec := range env.Catalogue.Categories()[0].Topics[:n] {
		env.Session.Progress.Toggle(rec.ID())
	}
}

func TestViewShowsCategoryCounts(t *testing.T) {
	env := newTestEnv(t)
	completeFirst(env, 3)
	s := New(env)

	first := env.Catalogue.Categories()[0]
	view := ansi.Strip(s.View(100, 50))
	if !strings.Contains(view, first.Name) {
		t.Error("view should list the first category")
	}
	if !strings.Contains(view, "3/11") {
		t.Errorf("expected 3/11 for %s, got:\n%s", first.Name, view)
	}
	if !strings.Contains(view, "3/30") {
		t.Error("expected the overall 3/30 count")
	}
}

func TestResetNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	completeFirst(env, 2)
	s := New(env)

	s.Update(key("r"))
	if !s.CapturesInput() {
		t.Fatal("r should open the confirm dialog")
	}
	if !strings.Contains(ansi.Strip(s.View(100, 50)), "¿Borrar los 2 temas completados?") {
		t.Error("expected the confirm prompt")
	}

	// Cancel is the default button.
	s.Update(key("enter"))
	if s.CapturesInput() {
		t.Error("enter on Cancelar should close the dialog")
	}
	if env.Session.Progress.Count() != 2 {
		t.Error("cancelling should keep progress")
	}
}

func TestResetConfirmed(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"y key", []string{"r", "y"}},
		{"reset button", []string{"r", "left", "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			completeFirst(env, 4)
			s := New(env)

			for _, k := range tt.keys {
				s.Update(key(k))
			}
			if env.Session.Progress.Count() != 0 {
				t.Errorf("expected progress cleared, got %d", env.Session.Progress.Count())
			}
			if s.CapturesInput() {
				t.Error("dialog should close after reset")
			}
		})
	}
}

func TestEscCancelsDialog(t *testing.T) {
	env := newTestEnv(t)
	completeFirst(env, 1)
	s := New(env)

	s.Update(key("r"))
	s.Update(key("esc"))
	if s.CapturesInput() {
		t.Error("esc should close the dialog")
	}
	if env.Session.Progress.Count() != 1 {
		t.Error("esc should keep progress")
	}
}

func TestStatsReflectQuiz(t *testing.T) {
	env := newTestEnv(t)
	pool := questions.Pool{{
		Category:      "Programación en Python",
		Topic:         "Bucles",
		Question:      "¿Cuántas veces?",
		Options:       []string{"2", "3"},
		CorrectAnswer: "3",
	}}
	if err := env.Session.Quiz.DrawRandom(pool, env.Session.Source); err != nil {
		t.Fatal(err)
	}
	env.Session.Quiz.SubmitAnswer("3")
	env.Session.Quiz.SubmitAnswer("2")

	s := New(env)
	created := env.Session.State.CreatedAt
	s.now = func() time.Time { return created.Add(90 * time.Second) }

	view := ansi.Strip(s.View(100, 50))
	for _, want := range []string{"10", "1/2", "50%", "1:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
