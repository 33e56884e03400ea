// Package flashcards runs the self-graded card drill: read the question,
// reveal the answer, move on.
package flashcards

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// FlashcardsScreen shows one card at a time from the session's drill.
type FlashcardsScreen struct {
	env *screen.Env

	// err is shown as a blocking notice until the next key press.
	err error
}

var (
	_ screen.Screen          = (*FlashcardsScreen)(nil)
	_ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
)

// New creates the screen. The first time the drill is opened in a session a
// card is drawn straight away; later visits resume the current card.
func New(env *screen.Env) *FlashcardsScreen {
	s := &FlashcardsScreen{env: env}
	if _, ok := env.Session.Flashcards.Current(); !ok {
		s.advance()
	}
	return s
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if s.err != nil {
		s.err = nil
		return s, nil
	}

	cards := s.env.Session.Flashcards
	switch kmsg.String() {
	case "space", "enter":
		if cards.Revealed() {
			s.advance()
		} else {
			s.fail(cards.Reveal())
		}
	case "n":
		s.advance()
	case "q":
		return s, router.Pop
	}
	return s, nil
}

func (s *FlashcardsScreen) advance() {
	s.fail(s.env.Session.Flashcards.Advance(s.env.Pool, s.env.Session.Source))
}

func (s *FlashcardsScreen) fail(err error) {
	if err != nil {
		s.env.Log().Warn("flashcard action failed", "error", err)
		s.err = err
	}
}

func (s *FlashcardsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.err != nil {
		body = components.ErrorNotice(screen.ErrorMessage(s.err), cw)
	} else {
		body = s.renderCard(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *FlashcardsScreen) renderCard(cw int) string {
	cards := s.env.Session.Flashcards
	rec, ok := cards.Current()
	if !ok {
		return theme.Hint.Render("Pulsá n para sacar una tarjeta.")
	}

	textWidth := cw - 6
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(rec.Category + " · " + rec.Topic))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Bold(true).Render(rec.Question))
	b.WriteString("\n\n")

	if cards.Revealed() {
		b.WriteString(theme.Correct.Render("Respuesta: " + rec.CorrectAnswer))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(textWidth).Foreground(theme.TextDim).Render(rec.Definition))
	} else {
		b.WriteString(theme.Hint.Render("Pensá la respuesta y pulsá espacio para verla."))
	}

	return components.Card(b.String(), cw)
}

func (s *FlashcardsScreen) Title() string {
	return "Tarjetas"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.env.Session.Flashcards.Revealed() {
		return []layout.KeyHint{
			{Key: "Espacio", Description: "Siguiente"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "Espacio", Description: "Ver respuesta"},
		{Key: "n", Description: "Otra tarjeta"},
		{Key: "Esc", Description: "Volver"},
	}
}
