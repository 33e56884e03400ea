package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/browse"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/flashcards"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/progress"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/quiz"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	env        *screen.Env
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the shared environment.
func New(env *screen.Env) *HomeScreen {
	menuLabels := []string{"EXPLORAR TEMAS", "TARJETAS", "CUESTIONARIO", "PROGRESO", "SALIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return router.Push(browse.New(env))
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return router.Push(flashcards.New(env))
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return router.Push(quiz.New(env))
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return router.Push(progress.New(env))
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		env:        env,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps
	// to estimate the terminal height.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sess := h.env.Session
	completed := sess.Progress.Count()
	total := h.env.Catalogue.Len()
	score := sess.Quiz.Score()
	streak := sess.State.Quiz.Streak

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(pickMascot(completed, total, streak), cw))
	}
	sections = append(sections, renderStatsBar(completed, total, score, streak, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Elegir"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "1-5", Description: "Atajo"},
		{Key: "q", Description: "Salir"},
	}
}
