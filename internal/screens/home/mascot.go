package home

import (
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Gold, star eyes: every topic complete
	MascotOnFire                           // Amber, flame: answer streak running
)

// streakForFire is the answer streak that switches the mascot to MascotOnFire.
const streakForFire = 3

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ μ σ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ μ σ │
└─╥═╥─┘
  ╚═╝`

const mascotOnFire = `┌─────┐ ‸
│ ◉ ◉ │(")
│  ▽  │
│ μ σ │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Highlight
	case MascotOnFire:
		art = mascotOnFire
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// pickMascot chooses the variant for the learner's current standing.
func pickMascot(completed, total, streak int) MascotVariant {
	switch {
	case total > 0 && completed == total:
		return MascotCelebrating
	case streak >= streakForFire:
		return MascotOnFire
	default:
		return MascotIdle
	}
}
