// Package progress shows how much of the catalogue the learner has covered.
package progress

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

var confirmLabels = []string{"Sí, reiniciar", "Cancelar"}

const (
	buttonReset  = 0
	buttonCancel = 1
)

// ProgressScreen displays per-category completion and quiz stats, and resets
// progress after confirmation.
type ProgressScreen struct {
	env *screen.Env
	now func() time.Time

	confirming bool
	button     int
}

var (
	_ screen.Screen          = (*ProgressScreen)(nil)
	_ screen.KeyHintProvider = (*ProgressScreen)(nil)
	_ screen.InputCapturer   = (*ProgressScreen)(nil)
)

// New creates a new ProgressScreen.
func New(env *screen.Env) *ProgressScreen {
	return &ProgressScreen{env: env, now: time.Now}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progreso"
}

// CapturesInput keeps Esc on the screen while the reset dialog is open.
func (s *ProgressScreen) CapturesInput() bool {
	return s.confirming
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "←→", Description: "Elegir"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Reiniciar progreso"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "left", "right", "tab", "h", "l":
			s.button = 1 - s.button
		case "y", "s":
			s.reset()
		case "enter":
			if s.button == buttonReset {
				s.reset()
			} else {
				s.confirming = false
			}
		case "n", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		s.confirming = true
		s.button = buttonCancel
	case "q":
		return s, router.Pop
	}
	return s, nil
}

func (s *ProgressScreen) reset() {
	n := s.env.Session.Progress.Count()
	s.env.Session.Progress.Reset()
	s.confirming = false
	s.env.Log().Info("progress reset", "cleared", n)
}

func (s *ProgressScreen) View(width, height int) string {
	sum := session.BuildSummary(s.env.Session, s.env.Catalogue, s.now())
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Tu progreso"))

	overall := components.NewProgressBar("Total", sum.Completed, sum.Total, cw)
	sections = append(sections, overall.View())

	labelWidth := 0
	for _, cp := range sum.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(cp.Category))
	}
	var bars []string
	for _, cp := range sum.Categories {
		bar := components.NewProgressBar(cp.Category, cp.Completed, cp.Total, cw)
		bar.LabelWidth = labelWidth
		bars = append(bars, bar.View())
	}
	sections = append(sections, strings.Join(bars, "\n"))

	sections = append(sections, renderStats(sum))

	if s.confirming {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("¿Borrar los %d temas completados?", sum.Completed))
		dialog := prompt + "\n\n" + components.ButtonRow(confirmLabels, s.button)
		sections = append(sections, theme.Notice.Width(cw-2).Render(dialog))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func renderStats(sum *session.Summary) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60

	lines := []string{
		dim.Render("Puntaje:    ") + val.Render(fmt.Sprintf("%d", sum.Score)),
		dim.Render("Respuestas: ") + val.Render(fmt.Sprintf("%d/%d", sum.Correct, sum.Attempts)),
		dim.Render("Precisión:  ") + val.Render(fmt.Sprintf("%.0f%%", sum.Accuracy*100)),
		dim.Render("Sesión:     ") + val.Render(fmt.Sprintf("%d:%02d", mins, secs)),
	}
	return strings.Join(lines, "\n")
}
