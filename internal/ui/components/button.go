package components

import (
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// Button is a styled button label.
type Button struct {
	Label  string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow renders buttons side by side with the one at active highlighted.
func ButtonRow(labels []string, active int) string {
	parts := make([]string, 0, 2*len(labels))
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, Button{Label: l, Active: i == active}.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
