package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/demo"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/browse"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/home"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	cat := catalogue.Default()
	pool, err := questions.Build(cat)
	if err != nil {
		t.Fatalf("build pool: %v", err)
	}
	env := &screen.Env{
		Catalogue: cat,
		Pool:      pool,
		Demos:     demo.Default(),
		Session:   session.New(questions.NewSource(1)),
	}
	m := newAppModel(env)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

// send delivers msg and then runs the resulting commands, feeding navigation
// messages back through the model. Commands that would block (ticks) or quit
// are not executed.
func send(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		updated, _ = m.Update(out)
		m = updated.(AppModel)
	}
	return m
}

func enterHome(m AppModel) AppModel {
	return send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestStartsOnSplashThenHome(t *testing.T) {
	m := newTestModel(t)
	if m.router.Active().Title() != "" {
		t.Fatal("expected the splash first")
	}

	m = enterHome(m)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("splash should be replaced, depth %d", m.router.Depth())
	}
}

func TestHeaderShowsStats(t *testing.T) {
	m := enterHome(newTestModel(t))
	rec := m.env.Catalogue.Records()[0]
	m.env.Session.Progress.Toggle(rec.ID())

	view := ansi.Strip(m.render())
	if !strings.Contains(view, "1/30") {
		t.Errorf("header should show 1/30 completed, got:\n%s", view)
	}
	if !strings.Contains(view, "Inicio") {
		t.Error("header should show the screen title")
	}
}

func TestEscPopsScreen(t *testing.T) {
	m := enterHome(newTestModel(t))
	m = send(m, tea.KeyPressMsg{Code: '1', Text: "1"})
	if _, ok := m.router.Active().(*browse.BrowseScreen); !ok {
		t.Fatalf("expected browse screen, got %T", m.router.Active())
	}

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("esc should return home, got %T", m.router.Active())
	}

	// Esc at the root does nothing.
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Error("esc at root should keep the home screen")
	}
}

func TestEscGoesToCapturingScreen(t *testing.T) {
	m := enterHome(newTestModel(t))
	m = send(m, tea.KeyPressMsg{Code: '1', Text: "1"})
	// Opening the filter starts a cursor blink; skip running it.
	updated, _ := m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	m = updated.(AppModel)

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	b, ok := m.router.Active().(*browse.BrowseScreen)
	if !ok {
		t.Fatalf("esc should close the filter, not the screen; got %T", m.router.Active())
	}
	if b.CapturesInput() {
		t.Error("filter should be closed")
	}
}

func TestTooSmall(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	view := updated.(AppModel).render()
	if !strings.Contains(ansi.Strip(view), "80") {
		t.Error("expected the minimum size message")
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := enterHome(newTestModel(t))
	m = send(m, tea.KeyPressMsg{Code: '1', Text: "1"})

	if !strings.Contains(ansi.Strip(m.render()), "Filtrar") {
		t.Error("footer should show the browse screen's hints")
	}
}

func TestContentSizeExcludesChrome(t *testing.T) {
	m := newTestModel(t)
	if got := m.contentSize(); got.Width != 120 || got.Height != 40 {
		t.Errorf("splash should get the whole terminal, got %+v", got)
	}

	m = enterHome(m)
	got := m.contentSize()
	if got.Width != 120 {
		t.Errorf("width = %d, want 120", got.Width)
	}
	if got.Height <= 0 || got.Height >= 40 {
		t.Errorf("height = %d, want the area between header and footer", got.Height)
	}
}
