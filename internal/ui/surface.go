package ui

import (
	"github.com/charmbracelet/lipgloss"

	"incidentdesk/internal/ui/theme"
)

// Surface wraps a Canvas whose background is already painted with a theme
// color.
type Surface struct {
	Canvas *Canvas
}

// NewPrimarySurface returns a Surface that uses the primary application
// background from the active theme.
func NewPrimarySurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().Background())
}

// NewSecondarySurface returns a Surface backed by the secondary background
// (used by overlays and the alert).
func NewSecondarySurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().BackgroundSecondary())
}

func newSurface(width, height int, bg lipgloss.TerminalColor) Surface {
	canvas := NewCanvas(width, height)
	canvas.Fill(bg)
	return Surface{Canvas: canvas}
}

// Draw writes the provided block starting at x,y.
func (s Surface) Draw(x, y int, block string) {
	if s.Canvas == nil {
		return
	}
	s.Canvas.DrawStringAt(x, y, block)
}
