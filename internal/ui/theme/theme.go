// Package theme provides the semantic color system for the incidentdesk UI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors the UI draws with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Focused borders, header bg
	Secondary() lipgloss.AdaptiveColor // Field labels
	Accent() lipgloss.AdaptiveColor    // Incident ids

	// Status colors
	Error() lipgloss.AdaptiveColor   // Alerts, high severity
	Warning() lipgloss.AdaptiveColor // Medium severity, priority badges
	Success() lipgloss.AdaptiveColor // Low severity, success toasts
	Info() lipgloss.AdaptiveColor    // Categories

	// Text colors
	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor
	TextEmphasized() lipgloss.AdaptiveColor

	// Background colors
	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected rows, overlays

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
}

// SeverityColor maps an AI severity label to a theme color. Unknown or
// missing labels use the muted text color.
func SeverityColor(t Theme, severity string) lipgloss.AdaptiveColor {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "high", "critical":
		return t.Error()
	case "medium":
		return t.Warning()
	case "low":
		return t.Success()
	default:
		return t.TextMuted()
	}
}
