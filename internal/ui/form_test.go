package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"incidentdesk/internal/incident"
)

func newTestForm(client *incident.MockClient, calls *int) *IncidentForm {
	return NewIncidentForm(client, 0, func(incident.Incident) tea.Cmd {
		*calls++
		return nil
	})
}

func TestFormSubmitInvokesCallbackOnceAndClears(t *testing.T) {
	client := incident.NewMockClient()
	client.CreateFn = func(_ context.Context, req incident.CreateRequest) (incident.Incident, error) {
		return incident.Incident{ID: incident.NumberID(1), Title: req.Title}, nil
	}
	calls := 0
	form := newTestForm(client, &calls)
	form.SetValues("  Outage ", "DB down")

	cmd := form.Submit()
	if cmd == nil {
		t.Fatalf("expected a create command")
	}
	if !form.Submitting() {
		t.Fatalf("expected submitting indicator while in flight")
	}
	form.Update(cmd())

	if calls != 1 {
		t.Fatalf("expected callback once, got %d", calls)
	}
	if title, desc := form.Values(); title != "" || desc != "" {
		t.Fatalf("expected cleared fields, got %q/%q", title, desc)
	}
	if form.Submitting() {
		t.Fatalf("expected submitting cleared")
	}
	if len(client.CreateCallArgs) != 1 || client.CreateCallArgs[0].Title != "Outage" {
		t.Fatalf("expected trimmed title sent, got %+v", client.CreateCallArgs)
	}
}

func TestFormFailureKeepsValuesAndRaisesAlert(t *testing.T) {
	client := incident.NewMockClient()
	client.CreateFn = func(context.Context, incident.CreateRequest) (incident.Incident, error) {
		return incident.Incident{}, errors.New("boom")
	}
	calls := 0
	form := newTestForm(client, &calls)
	form.SetValues("Outage", "DB down")

	_, cmd := form.Update(form.Submit()())
	if calls != 0 {
		t.Fatalf("callback must not run on failure")
	}
	if cmd == nil {
		t.Fatalf("expected alert command")
	}
	alert, ok := cmd().(showAlertMsg)
	if !ok || alert.text != CreateFailedMessage {
		t.Fatalf("expected %q alert, got %#v", CreateFailedMessage, alert)
	}
	if title, desc := form.Values(); title != "Outage" || desc != "DB down" {
		t.Fatalf("expected values kept, got %q/%q", title, desc)
	}
}

func TestFormRequiredFieldsBlockSubmit(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantMarked  []string
		wantFocus   int
	}{
		{name: "both blank", wantMarked: []string{"title", "description"}, wantFocus: formFieldTitle},
		{name: "whitespace description", title: "Outage", description: "   ", wantMarked: []string{"description"}, wantFocus: formFieldDescription},
		{name: "missing title", description: "DB down", wantMarked: []string{"title"}, wantFocus: formFieldTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := incident.NewMockClient()
			calls := 0
			form := newTestForm(client, &calls)
			form.SetValues(tt.title, tt.description)

			if cmd := form.Submit(); cmd != nil {
				t.Fatalf("expected submit to be blocked")
			}
			if client.CreateCallCount != 0 {
				t.Fatalf("expected no request")
			}
			if len(form.invalid) != len(tt.wantMarked) {
				t.Fatalf("expected %v marked, got %v", tt.wantMarked, form.invalid)
			}
			view := ansi.Strip(form.View())
			for _, field := range tt.wantMarked {
				if !form.invalid[field] {
					t.Fatalf("expected %s marked", field)
				}
				if !strings.Contains(view, "* "+field+" is required") {
					t.Fatalf("expected marker for %s in view:\n%s", field, view)
				}
			}
			if form.focus != tt.wantFocus {
				t.Fatalf("expected focus %d, got %d", tt.wantFocus, form.focus)
			}
		})
	}
}

func TestFormAllowsDuplicateSubmits(t *testing.T) {
	client := incident.NewMockClient()
	client.CreateFn = func(context.Context, incident.CreateRequest) (incident.Incident, error) {
		return incident.Incident{ID: incident.NumberID(1)}, nil
	}
	calls := 0
	form := newTestForm(client, &calls)
	form.SetValues("Outage", "DB down")

	first := form.Submit()
	second := form.Submit()
	if first == nil || second == nil {
		t.Fatalf("expected both submits to issue a request")
	}
	first()
	second()
	if client.CreateCallCount != 2 {
		t.Fatalf("expected two creates, got %d", client.CreateCallCount)
	}
}

func TestFormFocusCycles(t *testing.T) {
	form := newTestForm(incident.NewMockClient(), new(int))

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.focus != formFieldDescription {
		t.Fatalf("expected tab to move to description")
	}
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.focus != formFieldTitle {
		t.Fatalf("expected tab to wrap to title")
	}
	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if form.focus != formFieldDescription {
		t.Fatalf("expected shift+tab to wrap to description")
	}
}

func TestFormTypingClearsMarker(t *testing.T) {
	form := newTestForm(incident.NewMockClient(), new(int))
	form.Submit()
	if !form.invalid["title"] {
		t.Fatalf("expected title marked")
	}
	form.Update(keyRune('a'))
	if form.invalid["title"] {
		t.Fatalf("expected marker cleared after typing")
	}
	if title, _ := form.Values(); title != "a" {
		t.Fatalf("expected typed title, got %q", title)
	}
}
