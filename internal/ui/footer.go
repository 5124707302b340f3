package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

var globalFooterHints = []footerHint{
	{"n", "Report"},
	{"r", "Reload"},
	{"q", "Quit"},
	{"?", "Help"},
}

var listFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Detail"},
}

var detailFooterHints = []footerHint{
	{"↑↓", "Scroll"},
	{"esc", "Close"},
	{"c", "Copy id"},
}

// renderFooter renders the footer bar with pill-style key hints and the API
// endpoint on the right.
func (m *App) renderFooter() string {
	var hints []footerHint
	if m.detailOpen() {
		hints = append(hints, detailFooterHints...)
	} else {
		hints = append(hints, listFooterHints...)
	}
	hints = append(hints, globalFooterHints...)

	right := styleKeyDesc().Render(m.endpoint)
	rightWidth := lipgloss.Width(right)
	hints = trimHintsToFit(hints, m.width-rightWidth-4)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	left := strings.Join(parts, "  ")

	spacing := m.width - lipgloss.Width(left) - rightWidth
	if spacing < 2 {
		spacing = 2
	}
	return left + strings.Repeat(" ", spacing) + right
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit drops hints from the front (context first) until they fit.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	for len(hints) > 0 && renderHintsWidth(hints) > availableWidth {
		if len(hints) > len(globalFooterHints) {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

func renderHintsWidth(hints []footerHint) int {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
