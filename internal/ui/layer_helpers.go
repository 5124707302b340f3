package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// screenArea is the terminal, with the rows the header and footer own.
type screenArea struct {
	width, height  int
	header, footer int
}

func (m *App) screenArea() screenArea {
	return screenArea{width: m.width, height: m.height, header: headerHeight, footer: footerHeight}
}

func (a screenArea) bodyTop() int { return max(a.header, 0) }

// bodyBottom is exclusive.
func (a screenArea) bodyBottom() int {
	return max(a.height-max(a.footer, 0), a.bodyTop())
}

// center places a w×h block in the middle of the body. A block taller than
// the body starts at its top row.
func (a screenArea) center(w, h int) (int, int) {
	top := a.bodyTop()
	y := top + (a.bodyBottom()-top-h)/2
	return max((a.width-w)/2, 0), max(y, top)
}

// corner places a w×h block at the bottom right of the body, one cell in
// from the pane borders.
func (a screenArea) corner(w, h int) (int, int) {
	return max(a.width-w-2, 0), max(a.bodyBottom()-h-1, a.bodyTop())
}

// overlayLayer draws a modal (form, help, alert) centered over the body.
func overlayLayer(content string, area screenArea) Layer {
	return LayerFunc(func() *Canvas {
		if strings.TrimSpace(content) == "" {
			return nil
		}
		w, h := blockSize(content)
		surface := NewSecondarySurface(w, h)
		surface.Draw(0, 0, content)
		surface.Canvas.SetOffset(area.center(w, h))
		return surface.Canvas
	})
}

// toastLayer draws a notification in the body's bottom-right corner.
func toastLayer(content string, area screenArea) Layer {
	return LayerFunc(func() *Canvas {
		if content == "" {
			return nil
		}
		w, h := blockSize(content)
		surface := NewPrimarySurface(w, h)
		surface.Draw(0, 0, content)
		surface.Canvas.SetOffset(area.corner(w, h))
		return surface.Canvas
	})
}

func blockSize(content string) (int, int) {
	w := max(maxLineWidth(splitOverlayLines(content)), 1)
	h := max(lipgloss.Height(strings.ReplaceAll(content, "\r\n", "\n")), 1)
	return w, h
}
