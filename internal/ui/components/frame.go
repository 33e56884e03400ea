package components

import (
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for framed sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// Frame wraps content in a double-border frame, centering it vertically and
// horizontally within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Render(content)
}

// ErrorNotice renders a blocking error message with a dismiss hint.
func ErrorNotice(msg string, cw int) string {
	body := msg + "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Pulsá cualquier tecla para continuar")
	return theme.Notice.Width(cw - 2).Render(body)
}
