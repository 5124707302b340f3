package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type toastKind int

const (
	toastNone toastKind = iota
	toastCreated
	toastCopied
	toastTheme
	toastError
)

var toastDurations = map[toastKind]time.Duration{
	toastCreated: 4 * time.Second,
	toastCopied:  3 * time.Second,
	toastTheme:   2 * time.Second,
	toastError:   5 * time.Second,
}

// toast is the single bottom-right notification. A new toast replaces the
// current one.
type toast struct {
	kind  toastKind
	text  string
	start time.Time
}

func (t toast) visible() bool {
	if t.kind == toastNone || t.text == "" {
		return false
	}
	return timeNow().Sub(t.start) < toastDurations[t.kind]
}

func (t toast) remaining() int {
	left := toastDurations[t.kind] - timeNow().Sub(t.start)
	if left < 0 {
		return 0
	}
	return int(left.Round(time.Second).Seconds())
}

func (m *App) showToast(kind toastKind, text string) {
	m.toast = toast{kind: kind, text: text, start: timeNow()}
}

// renderToast renders the active toast with a countdown.
func (m *App) renderToast(area screenArea) Layer {
	if !m.toast.visible() {
		return nil
	}

	countdown := fmt.Sprintf("[%ds]", m.toast.remaining())
	toastWidth := max(lipgloss.Width(m.toast.text), 30)
	padding := max(toastWidth-len(countdown), 0)
	content := m.toast.text + "\n" + strings.Repeat(" ", padding) + countdown

	style := styleSuccessToast()
	if m.toast.kind == toastError {
		style = style.BorderForeground(styleErrorText().GetForeground())
	}
	return toastLayer(style.Render(content), area)
}
