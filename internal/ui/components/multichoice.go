package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// ChoiceSubmittedMsg is emitted when the learner submits an option.
type ChoiceSubmittedMsg struct {
	Index  int
	Choice string
}

// MultiChoice is a multiple-choice selector component. It does not know the
// right answer: the owner scores the submission and reports back through
// MarkResult. Submitting again is always allowed.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int

	// ChosenIndex is the last submitted option, or -1.
	ChosenIndex int

	// CorrectIndex is the right option once a result is known, or -1.
	CorrectIndex int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Digits pick an option
// directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.submit()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
			}
		}
	}

	return m, nil
}

func (m MultiChoice) submit() tea.Cmd {
	idx := m.Selected
	choice := m.Options[idx]
	return func() tea.Msg {
		return ChoiceSubmittedMsg{Index: idx, Choice: choice}
	}
}

// MarkResult records the outcome of the submission of option chosen.
func (m *MultiChoice) MarkResult(chosen int, correctAnswer string) {
	m.ChosenIndex = chosen
	m.CorrectIndex = -1
	for i, opt := range m.Options {
		if opt == correctAnswer {
			m.CorrectIndex = i
			break
		}
	}
}

// Submitted reports whether any option has been submitted.
func (m MultiChoice) Submitted() bool {
	return m.ChosenIndex >= 0
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Submitted() && i == m.CorrectIndex:
			style = theme.Correct
		case m.Submitted() && i == m.ChosenIndex:
			style = theme.Incorrect
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
