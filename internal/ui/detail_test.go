package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"incidentdesk/internal/incident"
)

func TestDetailRendersAllFields(t *testing.T) {
	withFixedNow(t, time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))
	created := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	d := NewIncidentDetail("plain", DefaultKeyMap())
	d.SetSize(70, 30)
	d.SetIncident(incident.Incident{
		ID:          incident.NumberID(42),
		Title:       "Outage",
		Description: "DB down",
		Service:     "payments",
		Status:      "in_progress",
		Priority:    "critical",
		AISeverity:  "high",
		AICategory:  "network",
		CreatedAt:   &created,
	})

	view := ansi.Strip(d.View())
	for _, want := range []string{
		"#42 Outage",
		"Status:", "In Progress",
		"Priority:", "CRITICAL",
		"Service:", "payments",
		"AI Severity:", "high",
		"AI Category:", "network",
		"Created:", "2025-03-03 10:00 (2h ago)",
		"Description", "DB down",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected detail to contain %q, got:\n%s", want, view)
		}
	}
}

func TestDetailBlankFieldsShowDash(t *testing.T) {
	d := NewIncidentDetail("plain", DefaultKeyMap())
	d.SetSize(60, 20)
	d.SetIncident(incident.Incident{ID: incident.NumberID(1), Title: "Bare"})

	view := ansi.Strip(d.View())
	for _, label := range []string{"Status:", "AI Severity:", "AI Category:", "Updated:"} {
		idx := strings.Index(view, label)
		if idx < 0 {
			t.Fatalf("missing %s in:\n%s", label, view)
		}
		line := view[idx:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		if !strings.HasSuffix(strings.TrimSpace(line), "-") {
			t.Fatalf("expected dash for %s, got %q", label, line)
		}
	}
}

func TestDetailUnknownStatusShownRaw(t *testing.T) {
	if got := statusLabel("triage"); got != "triage" {
		t.Fatalf("expected raw status, got %q", got)
	}
	if got := ansi.Strip(priorityPill("p0")); got != "p0" {
		t.Fatalf("expected raw priority, got %q", got)
	}
}

func TestDetailCloseEmitsMessage(t *testing.T) {
	d := NewIncidentDetail("plain", DefaultKeyMap())
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, keyRune('x')} {
		_, cmd := d.Update(msg)
		if cmd == nil {
			t.Fatalf("expected close command for %s", msg)
		}
		if _, ok := cmd().(DetailClosedMsg); !ok {
			t.Fatalf("expected DetailClosedMsg for %s", msg)
		}
	}
	if _, cmd := d.Update(keyRune('z')); cmd != nil {
		t.Fatalf("unexpected command for unbound key")
	}
}

func TestDetailScrolls(t *testing.T) {
	d := NewIncidentDetail("plain", DefaultKeyMap())
	d.SetSize(40, 4)
	d.SetIncident(incident.Incident{ID: incident.NumberID(1), Title: "Long", Description: strings.Repeat("line\n\n", 30)})

	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	if d.viewport.YOffset != 1 {
		t.Fatalf("expected scroll by one, got %d", d.viewport.YOffset)
	}
	d.Update(keyRune('g'))
	if d.viewport.YOffset != 0 {
		t.Fatalf("expected home to reset scroll, got %d", d.viewport.YOffset)
	}
}
