package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFitBoxWidth(t *testing.T) {
	tests := []struct {
		name string
		want int
		term int
		got  int
	}{
		{"unknown terminal", formBoxWidth, 0, formBoxWidth},
		{"roomy terminal", formBoxWidth, 200, formBoxWidth},
		{"narrow terminal", formBoxWidth, 50, 44},
		{"floor", formBoxWidth, 20, minBoxWidth},
		{"alert untouched", alertBoxWidth, 80, alertBoxWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitBoxWidth(tt.want, tt.term); got != tt.got {
				t.Fatalf("fitBoxWidth(%d, %d) = %d, want %d", tt.want, tt.term, got, tt.got)
			}
		})
	}
}

func TestModalBuilderLayout(t *testing.T) {
	b := newModalBuilder(alertBoxWidth)
	if b.contentWidth() != alertBoxWidth-2*boxPadding {
		t.Fatalf("unexpected content width %d", b.contentWidth())
	}
	out := b.title("TITLE").field("Label", "value").hints(footerHint{"⏎", "OK"}).render(styleModal())

	plain := ansi.Strip(out)
	for _, want := range []string{"TITLE", "Label", "value", "OK", strings.Repeat("─", 10)} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in overlay:\n%s", want, plain)
		}
	}
	// Width excludes the border.
	if w := lipgloss.Width(out); w != alertBoxWidth+2 {
		t.Fatalf("expected rendered width %d, got %d", alertBoxWidth+2, w)
	}
}

func TestFormFitsNarrowTerminal(t *testing.T) {
	form := NewIncidentForm(nil, 0, nil)
	if w := lipgloss.Width(form.View()); w != formBoxWidth+2 {
		t.Fatalf("expected default form width %d, got %d", formBoxWidth+2, w)
	}

	form.SetTermWidth(50)
	if w := lipgloss.Width(form.View()); w > 50-4 {
		t.Fatalf("expected form to leave a margin on a 50-column terminal, got width %d", w)
	}
}

func TestAlertOverlayDismissKeys(t *testing.T) {
	alert := NewAlertOverlay(CreateFailedMessage)
	if !strings.Contains(ansi.Strip(alert.View()), CreateFailedMessage) {
		t.Fatalf("expected message in alert view")
	}
	if _, cmd := alert.Update(keyRune('a')); cmd != nil {
		t.Fatalf("expected other keys ignored")
	}
	for _, name := range []string{"enter", "esc", "space"} {
		msg := map[string]tea.KeyMsg{
			"enter": {Type: tea.KeyEnter},
			"esc":   {Type: tea.KeyEsc},
			"space": {Type: tea.KeySpace},
		}[name]
		_, cmd := alert.Update(msg)
		if cmd == nil {
			t.Fatalf("expected %s to dismiss", name)
		}
		if _, ok := cmd().(AlertDismissedMsg); !ok {
			t.Fatalf("expected AlertDismissedMsg for %s", name)
		}
	}
}
