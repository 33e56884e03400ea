// Package browse lists the catalogue by category, with completion marks and
// a live filter.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/router"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screens/topic"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/components"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowTopic
)

type row struct {
	kind     rowKind
	category catalogue.Category
	topic    catalogue.TopicRecord
}

// BrowseScreen displays the catalogue organized by category.
type BrowseScreen struct {
	env          *screen.Env
	rows         []row
	cursor       int
	scrollOffset int
	filter       components.FilterInput
}

var (
	_ screen.Screen          = (*BrowseScreen)(nil)
	_ screen.KeyHintProvider = (*BrowseScreen)(nil)
	_ screen.InputCapturer   = (*BrowseScreen)(nil)
)

// New creates a new BrowseScreen.
func New(env *screen.Env) *BrowseScreen {
	s := &BrowseScreen{
		env:    env,
		filter: components.NewFilterInput("buscar tema", 40),
	}
	s.rebuild()
	return s
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.filter.Active() {
		return s, s.updateFilter(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "tab":
		s.nextCategory()
	case "shift+tab":
		s.prevCategory()
	case "space":
		if rec, ok := s.current(); ok {
			s.env.Session.Progress.Toggle(rec.ID())
		}
	case "enter":
		if rec, ok := s.current(); ok {
			return s, router.Push(topic.New(s.env, rec))
		}
	case "/":
		return s, s.filter.Open()
	case "esc":
		// Only reached while a filter is applied; see CapturesInput.
		s.filter.Clear()
		s.rebuild()
	case "q":
		return s, router.Pop
	}
	return s, nil
}

func (s *BrowseScreen) updateFilter(kmsg tea.KeyPressMsg) tea.Cmd {
	switch kmsg.String() {
	case "enter":
		s.filter.Close()
		return nil
	case "esc":
		s.filter.Clear()
		s.rebuild()
		return nil
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(kmsg)
	s.rebuild()
	return cmd
}

// CapturesInput keeps Esc on this screen while the filter is being edited or
// still applied.
func (s *BrowseScreen) CapturesInput() bool {
	return s.filter.Active() || s.filter.Value() != ""
}

func (s *BrowseScreen) View(width, height int) string {
	var lines []string
	if f := s.filter.View(); f != "" {
		lines = append(lines, "  "+f)
		height--
	}

	if !s.hasTopics() {
		lines = append(lines, "", theme.Hint.Render("  Ningún tema coincide con el filtro."))
		return strings.Join(lines, "\n")
	}

	s.adjustScroll(height)

	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowTopic:
			lines = append(lines, s.renderTopicRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *BrowseScreen) Title() string {
	return "Explorar temas"
}

// KeyHints returns the key binding hints for the footer.
func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	if s.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aplicar"},
			{Key: "Esc", Description: "Borrar filtro"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Tab", Description: "Categoría"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Espacio", Description: "Completar"},
		{Key: "/", Description: "Filtrar"},
		{Key: "Esc", Description: "Volver"},
	}
}

// rebuild recomputes the rows for the current filter and puts the cursor on
// the first matching topic.
func (s *BrowseScreen) rebuild() {
	query := catalogue.Slug(s.filter.Value())

	s.rows = s.rows[:0]
	for _, cat := range s.env.Catalogue.Categories() {
		catMatch := query != "" && strings.Contains(cat.Slug(), query)
		var matched []row
		for _, rec := range cat.Topics {
			if query == "" || catMatch || strings.Contains(catalogue.Slug(rec.Topic), query) {
				matched = append(matched, row{kind: rowTopic, category: cat, topic: rec})
			}
		}
		if len(matched) == 0 {
			continue
		}
		s.rows = append(s.rows, row{kind: rowCategoryHeader, category: cat})
		s.rows = append(s.rows, matched...)
	}

	s.cursor = 0
	s.scrollOffset = 0
	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			break
		}
	}
}

func (s *BrowseScreen) hasTopics() bool {
	for _, r := range s.rows {
		if r.kind == rowTopic {
			return true
		}
	}
	return false
}

func (s *BrowseScreen) current() (catalogue.TopicRecord, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowTopic {
		return catalogue.TopicRecord{}, false
	}
	return s.rows[s.cursor].topic, true
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *BrowseScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTopic {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first topic in the next category.
func (s *BrowseScreen) nextCategory() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].category.Name
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowTopic && s.rows[i].category.Name != current {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first topic in the previous category.
func (s *BrowseScreen) prevCategory() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].category.Name

	// Find the header of the previous category, then step onto its first topic.
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowCategoryHeader && s.rows[i].category.Name != current {
			s.cursor = i
			s.moveCursor(1)
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *BrowseScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the category header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *BrowseScreen) renderCategoryHeader(cat catalogue.Category, width int) string {
	done := s.env.Session.Progress.CountIn(cat.Name)
	name := strings.ToUpper(cat.Label())
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d/%d", done, len(cat.Topics)))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name + count)
}

// renderTopicRow renders a single topic row: cursor, completion mark, name and
// the quiz/demo markers.
func (s *BrowseScreen) renderTopicRow(r row, selected bool, width int) string {
	complete := s.env.Session.Progress.IsComplete(r.topic.ID())

	padding := 4
	iconWidth := 2
	markerWidth := 14
	nameWidth := max(width-padding-iconWidth-markerWidth, 10)

	name := ansi.Truncate(r.topic.Topic, nameWidth, "…")
	namePadded := name + strings.Repeat(" ", max(nameWidth-ansi.StringWidth(name), 0))

	icon := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if complete {
		icon = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s", cursor, icon, nameStyle.Render(namePadded), markers(r.topic))
}

func markers(rec catalogue.TopicRecord) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	quiz := dim.Render("      ")
	if rec.Quizzable() {
		quiz = lipgloss.NewStyle().Foreground(theme.Highlight).Render("? quiz")
	}
	demo := ""
	if rec.HasVisualDemo {
		demo = lipgloss.NewStyle().Foreground(theme.Info).Render("▦ demo")
	}
	return quiz + " " + demo
}
