// Package quiz runs the scored multiple-choice drill.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// QuizScreen shows the active question and the feedback for the last answer.
// Answers may be resubmitted; each one is scored.
type QuizScreen struct {
	env    *screen.Env
	choice components.MultiChoice

	// result is the feedback for the last submission, if any.
	result *session.AnswerResult

	// notice is a transient status line, cleared by the next key press.
	notice string

	// err is shown as a blocking notice until the next key press.
	err error
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates the screen, drawing a question if the session has none yet.
func New(env *screen.Env) *QuizScreen {
	s := &QuizScreen{env: env}
	if _, ok := env.Session.Quiz.Current(); ok {
		s.load()
	} else {
		s.next()
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceSubmittedMsg:
		s.submit(msg)
		return s, nil

	case tea.KeyPressMsg:
		if s.err != nil {
			s.err = nil
			return s, nil
		}
		s.notice = ""

		switch msg.String() {
		case "n":
			s.next()
			return s, nil
		case "r":
			s.env.Session.Quiz.ResetScore()
			s.notice = "Puntaje reiniciado."
			return s, nil
		case "q":
			return s, router.Pop
		}

		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit(msg components.ChoiceSubmittedMsg) {
	res, err := s.env.Session.Quiz.SubmitAnswer(msg.Choice)
	if err != nil {
		s.fail(err)
		return
	}
	s.result = &res
	s.choice.MarkResult(msg.Index, res.CorrectAnswer)
	s.env.Log().Debug("answer submitted", "correct", res.Correct, "score", res.Score)
}

func (s *QuizScreen) next() {
	if err := s.env.Session.Quiz.NextQuestion(s.env.Pool, s.env.Session.Source); err != nil {
		s.fail(err)
		return
	}
	s.load()
}

// load rebuilds the selector for the session's current question.
func (s *QuizScreen) load() {
	rec, _ := s.env.Session.Quiz.Current()
	s.choice = components.NewMultiChoice(rec.Question, rec.Options)
	s.result = nil
}

func (s *QuizScreen) fail(err error) {
	s.env.Log().Warn("quiz action failed", "error", err)
	s.err = err
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.err != nil {
		body = components.ErrorNotice(screen.ErrorMessage(s.err), cw)
	} else {
		body = s.renderQuestion(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	quiz := s.env.Session.Quiz
	rec, ok := quiz.Current()
	if !ok {
		return theme.Hint.Render("Pulsá n para sacar una pregunta.")
	}

	var sections []string
	sections = append(sections, s.renderStats())

	head := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rec.Category + " · " + rec.Topic)
	sections = append(sections, components.Card(head+"\n\n"+s.choice.View(), cw))

	if s.result != nil {
		sections = append(sections, renderFeedback(*s.result, cw))
	}
	if s.notice != "" {
		sections = append(sections, theme.Hint.Render(s.notice))
	}

	return strings.Join(sections, "\n\n")
}

func (s *QuizScreen) renderStats() string {
	quiz := s.env.Session.Quiz
	score := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).
		Render(fmt.Sprintf("★ %d pts", quiz.Score()))
	answered := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("aciertos %d/%d", quiz.CorrectAnswers(), quiz.Attempts()))
	return score + "   " + answered
}

func renderFeedback(res session.AnswerResult, cw int) string {
	var head string
	if res.Correct {
		head = theme.Correct.Render(fmt.Sprintf("¡Correcto! +%d", res.Awarded))
		if res.Streak > 1 {
			head += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  racha de %d", res.Streak))
		}
	} else {
		head = theme.Incorrect.Render("Incorrecto. La respuesta correcta es: " + res.CorrectAnswer)
	}
	def := lipgloss.NewStyle().Width(cw - 2).Foreground(theme.TextDim).Render(res.Definition)
	return head + "\n" + def
}

func (s *QuizScreen) Title() string {
	return "Cuestionario"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Elegir"},
		{Key: "Enter", Description: "Responder"},
		{Key: "n", Description: "Siguiente"},
		{Key: "r", Description: "Reiniciar puntaje"},
		{Key: "Esc", Description: "Volver"},
	}
}
