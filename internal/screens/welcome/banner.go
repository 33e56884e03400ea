package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗    ███╗   ███╗ █████╗ ███╗   ██╗██╗   ██╗ █████╗ ██╗
 ██╔══██╗██╔════╝    ████╗ ████║██╔══██╗████╗  ██║██║   ██║██╔══██╗██║
 ██║  ██║███████╗    ██╔████╔██║███████║██╔██╗ ██║██║   ██║███████║██║
 ██║  ██║╚════██║    ██║╚██╔╝██║██╔══██║██║╚██╗██║██║   ██║██╔══██║██║
 ██████╔╝███████║    ██║ ╚═╝ ██║██║  ██║██║ ╚████║╚██████╔╝██║  ██║███████╗
 ╚═════╝ ╚══════╝    ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝`

const bannerCompact = "D S · M A N U A L"

// bannerMinWidth is the narrowest terminal that fits the block-letter art.
const bannerMinWidth = 76

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
