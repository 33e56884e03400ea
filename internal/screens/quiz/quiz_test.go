package quiz

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/demo"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
)

func newTestEnv(t *testing.T, pool questions.Pool) *screen.Env {
	t.Helper()
	return &screen.Env{
		Catalogue: catalogue.Default(),
		Pool:      pool,
		Demos:     demo.Default(),
		Session:   session.New(questions.NewSource(3)),
	}
}

// buclesPool holds the single question used by the scoring scenarios.
func buclesPool() questions.Pool {
	return questions.Pool{{
		Category:      "Programación en Python",
		Topic:         "Bucles",
		Definition:    "Un bucle repite un bloque de código.",
		Question:      "¿Cuántas veces se ejecuta el cuerpo de `for i in range(3):`?",
		Options:       []string{"2", "3", "4", "Infinitas"},
		CorrectAnswer: "3",
	}}
}

func digit(n int) tea.KeyPressMsg {
	r := rune('0' + n)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

// answer selects option n (1-based), submits it and feeds the result back.
func answer(t *testing.T, s *QuizScreen, n int) {
	t.Helper()
	s.Update(digit(n))
	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("enter should submit the selected option")
	}
	msg := cmd()
	if _, ok := msg.(components.ChoiceSubmittedMsg); !ok {
		t.Fatalf("expected ChoiceSubmittedMsg, got %T", msg)
	}
	s.Update(msg)
}

func TestDrawsOnOpen(t *testing.T) {
	env := newTestEnv(t, buclesPool())
	s := New(env)

	if env.Session.Quiz.Phase() != session.QuizAwaiting {
		t.Fatal("opening the quiz should draw a question")
	}
	view := ansi.Strip(s.View(100, 40))
	if !strings.Contains(view, "range(3)") {
		t.Error("view should show the question")
	}
	if !strings.Contains(view, "4)  Infinitas") {
		t.Error("view should list every option")
	}
}

func TestCorrectThenWrongAnswer(t *testing.T) {
	env := newTestEnv(t, buclesPool())
	s := New(env)

	answer(t, s, 2)
	if got := env.Session.Quiz.Score(); got != 10 {
		t.Fatalf("expected score 10, got %d", got)
	}
	if !strings.Contains(ansi.Strip(s.View(100, 40)), "¡Correcto! +10") {
		t.Error("expected success feedback")
	}

	answer(t, s, 1)
	if got := env.Session.Quiz.Score(); got != 10 {
		t.Errorf("wrong answer should keep score 10, got %d", got)
	}
	view := ansi.Strip(s.View(100, 40))
	if !strings.Contains(view, "La respuesta correcta es: 3") {
		t.Error("expected the correct answer in the feedback")
	}
	if !strings.Contains(view, "Un bucle repite") {
		t.Error("feedback should include the definition")
	}
}

func TestResubmissionScoresAgain(t *testing.T) {
	env := newTestEnv(t, buclesPool())
	s := New(env)

	answer(t, s, 2)
	answer(t, s, 2)
	if got := env.Session.Quiz.Score(); got != 20 {
		t.Errorf("expected score 20 after two correct submissions, got %d", got)
	}
	if !strings.Contains(ansi.Strip(s.View(100, 40)), "racha de 2") {
		t.Error("expected the streak in the feedback")
	}
}

func TestResetScore(t *testing.T) {
	env := newTestEnv(t, buclesPool())
	s := New(env)
	answer(t, s, 2)
	before, _ := env.Session.Quiz.Current()

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if got := env.Session.Quiz.Score(); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
	if after, _ := env.Session.Quiz.Current(); after.ID() != before.ID() {
		t.Error("reset should keep the current question")
	}
	if !strings.Contains(ansi.Strip(s.View(100, 40)), "Puntaje reiniciado") {
		t.Error("expected the reset notice")
	}

	answer(t, s, 4)
	if got := env.Session.Quiz.Score(); got != 0 {
		t.Errorf("failed answers after reset should keep 0, got %d", got)
	}
}

func TestNextClearsFeedbackAndKeepsScore(t *testing.T) {
	pool, err := questions.Build(catalogue.Default())
	if err != nil {
		t.Fatalf("build pool: %v", err)
	}
	env := newTestEnv(t, pool)
	s := New(env)

	rec, _ := env.Session.Quiz.Current()
	idx := slices.Index(rec.Options, rec.CorrectAnswer)
	answer(t, s, idx+1)
	if env.Session.Quiz.Score() != 10 {
		t.Fatalf("expected score 10, got %d", env.Session.Quiz.Score())
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.result != nil {
		t.Error("next should clear the previous feedback")
	}
	if s.choice.Submitted() {
		t.Error("next should give a fresh selector")
	}
	if env.Session.Quiz.Score() != 10 {
		t.Error("next should keep the score")
	}
}

func TestReopenResumesQuestion(t *testing.T) {
	pool, err := questions.Build(catalogue.Default())
	if err != nil {
		t.Fatalf("build pool: %v", err)
	}
	env := newTestEnv(t, pool)
	New(env)
	first, _ := env.Session.Quiz.Current()

	s := New(env)
	again, _ := env.Session.Quiz.Current()
	if first.ID() != again.ID() {
		t.Errorf("reopening should resume %s, got %s", first.ID(), again.ID())
	}
	if s.choice.Question != first.Question {
		t.Error("selector should show the resumed question")
	}
}

func TestEmptyPoolShowsNotice(t *testing.T) {
	env := newTestEnv(t, nil)
	s := New(env)

	if !strings.Contains(ansi.Strip(s.View(100, 30)), "no tiene preguntas") {
		t.Fatal("expected the empty pool notice")
	}
	s.Update(enter)
	if s.err != nil {
		t.Error("key press should dismiss the notice")
	}
}
