package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a one-line search field that can be
// opened and closed.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates a closed filter field.
func NewFilterInput(placeholder string, maxWidth int) FilterInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return FilterInput{Model: ti}
}

// Open focuses the field for typing.
func (f *FilterInput) Open() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Close stops editing. The typed value is kept.
func (f *FilterInput) Close() {
	f.active = false
	f.Model.Blur()
}

// Clear closes the field and empties it.
func (f *FilterInput) Clear() {
	f.Close()
	f.Model.SetValue("")
}

// Active reports whether the field is taking keystrokes.
func (f FilterInput) Active() bool {
	return f.active
}

// Update forwards messages to the text field while it is open.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the field, or the applied filter when closed.
func (f FilterInput) View() string {
	if f.active {
		return f.Model.View()
	}
	if f.Value() == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("filtro: " + f.Value())
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}
