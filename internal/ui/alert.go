package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// AlertOverlay is a blocking message box. While it is shown the App routes
// every key to it.
type AlertOverlay struct {
	message string
	keys    KeyMap
}

// NewAlertOverlay creates an alert with the given text.
func NewAlertOverlay(message string) *AlertOverlay {
	return &AlertOverlay{message: message, keys: DefaultKeyMap()}
}

// Message returns the alert text.
func (a *AlertOverlay) Message() string { return a.message }

// Update dismisses the alert on enter, esc or space.
func (a *AlertOverlay) Update(msg tea.Msg) (*AlertOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if key.Matches(keyMsg, a.keys.Enter, a.keys.Escape) || keyMsg.Type == tea.KeySpace {
		return a, func() tea.Msg { return AlertDismissedMsg{} }
	}
	return a, nil
}

// View renders the alert box.
func (a *AlertOverlay) View() string {
	b := newModalBuilder(alertBoxWidth)
	return b.title(styleErrorText().Render("⚠ ERROR")).
		line(styleText().Render(wordwrap.String(a.message, b.contentWidth()))).
		gap().
		hints(footerHint{"⏎", "OK"}).
		render(styleModalAlert())
}

// Layer returns the alert as a centered overlay.
func (a *AlertOverlay) Layer(area screenArea) Layer {
	return overlayLayer(a.View(), area)
}
