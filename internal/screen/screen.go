package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is an optional interface for screens that need Esc while a
// text field or dialog is open. While CapturesInput reports true the app
// forwards Esc to the screen instead of going back.
type InputCapturer interface {
	CapturesInput() bool
}

// ContentSizeMsg tells the active screen how much room it has between the
// header and the footer. The app sends it on resize and whenever the active
// screen changes.
type ContentSizeMsg struct {
	Width  int
	Height int
}
