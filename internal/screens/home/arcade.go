package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, short form).
const titleFull = ` ██████╗ ███████╗
 ██╔══██╗██╔════╝
 ██║  ██║███████╗
 ██║  ██║╚════██║
 ██████╔╝███████║
 ╚═════╝ ╚══════╝`

const titleCompact = "D S · M A N U A L"

const subtitle = "Manual de Ciencia de Datos"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		return center.Render(style.Render(titleCompact))
	}
	return center.Render(style.Render(titleFull) + "\n" + theme.Subtitle.Render(subtitle))
}

// renderStatsBar renders the learner's standing in a bordered box matching
// content width.
func renderStatsBar(completed, total, score, streak, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			doneStyle.Render(fmt.Sprintf("✓%d/%d", completed, total)),
			scoreStyle.Render(fmt.Sprintf("★%d", score)),
			streakText(streak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			doneStyle.Render(fmt.Sprintf("✓ %d/%d TEMAS", completed, total)),
			scoreStyle.Render(fmt.Sprintf("★ %d PUNTOS", score)),
			streakText(streak, false, streakStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ SIN RACHA")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", streak))
	}
	return active.Render(fmt.Sprintf("⚡ RACHA %d", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
