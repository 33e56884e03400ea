package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"¡La terminal es muy chica!\n\nAgrandala hasta al menos\n%d x %d\n\nActual: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderStats is the session summary shown on the right of the header.
type HeaderStats struct {
	Completed int
	Total     int
	Score     int
}

// RenderHeader renders the application header bar. The title is dropped
// when it would collide with the brand or the stats.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  DS Manual")

	right := lipgloss.NewStyle().Foreground(theme.Success).
		Render(fmt.Sprintf("✓ %d/%d", stats.Completed, stats.Total)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("★ %d pts", stats.Score))

	inner := max(width-4, 0) // border + padding
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	if lipgloss.Width(left)+lipgloss.Width(center)+lipgloss.Width(right)+2 > inner {
		center = ""
	}

	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders the footer with key hints. When they do not fit, the
// hints just before the last one go first; the last (usually quit) stays.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	const sep = "   "
	avail := max(width-6, 0)
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, sep)) > avail {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}
	return bar(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return header + "\n" + body + "\n" + footer
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
