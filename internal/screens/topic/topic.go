// Package topic shows one catalogue entry in full.
package topic

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// TopicScreen shows the definition, example and demo of a single topic.
type TopicScreen struct {
	env    *screen.Env
	rec    catalogue.TopicRecord
	scroll int

	// size is the last content area the app reported.
	size screen.ContentSizeMsg
}

var (
	_ screen.Screen          = (*TopicScreen)(nil)
	_ screen.KeyHintProvider = (*TopicScreen)(nil)
)

// New creates a TopicScreen for rec.
func New(env *screen.Env, rec catalogue.TopicRecord) *TopicScreen {
	return &TopicScreen{env: env, rec: rec}
}

func (d *TopicScreen) Init() tea.Cmd { return nil }
func (d *TopicScreen) Title() string { return d.rec.Topic }

func (d *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if size, ok := msg.(screen.ContentSizeMsg); ok {
		d.size = size
		d.scroll = min(d.scroll, d.maxScroll())
		return d, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}
	switch kmsg.String() {
	case "space":
		d.env.Session.Progress.Toggle(d.rec.ID())
	case "up", "k":
		if d.scroll > 0 {
			d.scroll--
		}
	case "down", "j":
		d.scroll = min(d.scroll+1, d.maxScroll())
	case "h":
		return d, router.ToRoot
	case "q":
		return d, router.Pop
	}
	return d, nil
}

func (d *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Espacio", Description: "Completar"},
		{Key: "↑↓", Description: "Desplazar"},
		{Key: "h", Description: "Inicio"},
		{Key: "Esc", Description: "Volver"},
	}
}

// maxScroll lets the last line reach the bottom of the content area but no
// further. Before any size is known scrolling is unbounded; View clamps.
func (d *TopicScreen) maxScroll() int {
	if d.size.Height <= 0 {
		return d.scroll + 1
	}
	return scrollLimit(d.lines(d.size.Width), d.size.Height)
}

func scrollLimit(lines []string, height int) int {
	return max(len(lines)-height, 0)
}

func (d *TopicScreen) lines(width int) []string {
	return strings.Split(d.render(min(width-8, 70)), "\n")
}

func (d *TopicScreen) View(width, height int) string {
	lines := d.lines(width)
	offset := min(d.scroll, scrollLimit(lines, height))
	lines = lines[offset:]
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
}

func (d *TopicScreen) render(contentWidth int) string {
	rec := d.rec
	complete := d.env.Session.Progress.IsComplete(rec.ID())

	var b strings.Builder
	b.WriteString("\n")

	icon, state := "○", "Pendiente"
	stateStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if complete {
		icon, state = "✓", "Completado"
		stateStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", icon, rec.Topic)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+rec.Category) +
		"  " + stateStyle.Render(state))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(rec.Definition))
	b.WriteString("\n\n")

	if rec.Example != "" {
		b.WriteString(theme.Section.Render("  Ejemplo"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(theme.Code.Render(rec.Example)))
		b.WriteString("\n\n")
	}

	if out := d.env.Demos.Render(rec, contentWidth); out != "" {
		b.WriteString(theme.Section.Render("  Demostración"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(out))
		b.WriteString("\n\n")
	}

	if rec.Quizzable() {
		b.WriteString(theme.Hint.Render("  Este tema tiene una pregunta en el cuestionario."))
		b.WriteString("\n")
	}

	return b.String()
}
