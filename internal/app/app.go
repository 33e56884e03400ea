// Package app is the root Bubble Tea model of the terminal host.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/home"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/welcome"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
)

const tagline = "Manual de Ciencia de Datos"

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(env *screen.Env) AppModel {
	splash := welcome.New(func() screen.Screen { return home.New(env) }, tagline)
	return AppModel{
		env:    env,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(m.contentSize())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	before := m.router.Active()
	cmd := m.router.Update(msg)
	if active := m.router.Active(); active != before && m.width > 0 {
		cmd = tea.Batch(cmd, m.router.Update(m.contentSize()))
	}
	return m, cmd
}

// contentSize is the room the active screen gets inside the frame.
func (m AppModel) contentSize() screen.ContentSizeMsg {
	active := m.router.Active()
	if active == nil || active.Title() == "" {
		return screen.ContentSizeMsg{Width: m.width, Height: m.height}
	}
	header := layout.RenderHeader(active.Title(), m.stats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	return screen.ContentSizeMsg{
		Width:  m.width,
		Height: max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0),
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := active.Title()

	// Untitled screens (the splash) take the whole terminal.
	if title == "" {
		return m.router.View(m.width, m.height)
	}

	header := layout.RenderHeader(title, m.stats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	size := m.contentSize()
	content := m.router.View(size.Width, size.Height)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) stats() layout.HeaderStats {
	return layout.HeaderStats{
		Completed: m.env.Session.Progress.Count(),
		Total:     m.env.Catalogue.Len(),
		Score:     m.env.Session.Quiz.Score(),
	}
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program over env and blocks until it exits.
func Run(env *screen.Env) error {
	p := tea.NewProgram(newAppModel(env))
	if _, err := p.Run(); err != nil {
		env.Log().Error("program failed", "error", err)
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
