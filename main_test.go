package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// fakeBackend stores created incidents and serves them back, classifying
// each one the way the backend pipeline would.
type fakeBackend struct {
	mu        sync.Mutex
	incidents []map[string]any
	posts     []map[string]any
	requests  []string
	failPost  bool
	failGet   bool
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	if r.URL.Path != incidentsPath {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		if b.failGet {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(b.incidents)
	case http.MethodPost:
		if b.failPost {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":"boom"}`)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.posts = append(b.posts, body)
		created := map[string]any{
			"id":          len(b.incidents) + 1,
			"title":       body["title"],
			"description": body["description"],
			"service":     body["service"],
			"ai_severity": "high",
			"ai_category": "infra",
		}
		b.incidents = append(b.incidents, created)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}
}

func (b *fakeBackend) countRequests(prefix string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func newTestModel(t *testing.T, backend *fakeBackend) model {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	m := newModel(srv.URL, 0, srv.Client())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(model)
}

func fillForm(m *model, title, description, service string) {
	m.inputs[fieldTitle].SetValue(title)
	m.inputs[fieldDescription].SetValue(description)
	m.inputs[fieldService].SetValue(service)
}

func plainView(m model) string {
	return ansi.Strip(m.View())
}

func TestSubmitThenListRendersClassification(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(t, backend)
	fillForm(&m, "Outage", "DB down", "payments")

	cmd := m.submit()
	if cmd == nil {
		t.Fatalf("expected submit command for a complete form")
	}
	updated, refresh := m.Update(cmd())
	m = updated.(model)

	if got := backend.countRequests("POST"); got != 1 {
		t.Fatalf("expected exactly one POST, got %d", got)
	}
	if got := backend.countRequests("GET"); got != 0 {
		t.Fatalf("refresh must not be issued before the create resolves, saw %d GETs", got)
	}
	if refresh == nil {
		t.Fatalf("expected refresh command after successful create")
	}
	for i := range m.inputs {
		if v := m.inputs[i].Value(); v != "" {
			t.Fatalf("expected field %s cleared, got %q", fieldLabels[i], v)
		}
	}

	updated, _ = m.Update(refresh())
	m = updated.(model)
	if got := backend.countRequests("GET"); got != 1 {
		t.Fatalf("expected exactly one refresh GET, got %d", got)
	}

	want := map[string]any{"title": "Outage", "description": "DB down", "service": "payments"}
	if len(backend.posts) != 1 {
		t.Fatalf("expected one post body, got %d", len(backend.posts))
	}
	for k, v := range want {
		if backend.posts[0][k] != v {
			t.Fatalf("post body %s = %v, want %v", k, backend.posts[0][k], v)
		}
	}

	view := plainView(m)
	for _, s := range []string{"#1 Outage", "DB down", "Service: payments", "Severity: high", "Category: infra"} {
		if !strings.Contains(view, s) {
			t.Fatalf("expected view to contain %q, got:\n%s", s, view)
		}
	}
}

func TestMissingClassificationRendersNA(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	sev := "low"
	updated, _ := m.Update(incidentsLoadedMsg{incidents: []Incident{
		{ID: json.Number("3"), Title: "Disk", Description: "full", Service: "db"},
		{ID: "a-b", Title: "Cert", Description: "expired", Service: "edge", AISeverity: &sev},
	}})
	m = updated.(model)

	view := plainView(m)
	if c := strings.Count(view, "Category: N/A"); c != 2 {
		t.Fatalf("expected two N/A categories, got %d in:\n%s", c, view)
	}
	if !strings.Contains(view, "Severity: N/A") || !strings.Contains(view, "Severity: low") {
		t.Fatalf("expected N/A and low severities, got:\n%s", view)
	}
	if !strings.Contains(view, "#a-b Cert") {
		t.Fatalf("expected string id to render, got:\n%s", view)
	}
}

func TestEmptyListMessage(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	updated, _ := m.Update(incidentsLoadedMsg{incidents: []Incident{}})
	m = updated.(model)
	if !strings.Contains(plainView(m), "No incidents found.") {
		t.Fatalf("expected empty message, got:\n%s", plainView(m))
	}
}

func TestFailedSubmitKeepsFormAndAlerts(t *testing.T) {
	backend := &fakeBackend{failPost: true}
	m := newTestModel(t, backend)
	fillForm(&m, "Outage", "DB down", "payments")

	cmd := m.submit()
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	updated, refresh := m.Update(cmd())
	m = updated.(model)

	if refresh != nil {
		t.Fatalf("failed create must not trigger a refresh")
	}
	if m.inputs[fieldTitle].Value() != "Outage" || m.inputs[fieldDescription].Value() != "DB down" || m.inputs[fieldService].Value() != "payments" {
		t.Fatalf("form should stay populated after failure")
	}
	view := plainView(m)
	if !strings.Contains(view, submitFailedMsg) {
		t.Fatalf("expected alert, got:\n%s", view)
	}
	if strings.Contains(view, "500") || strings.Contains(view, "boom") {
		t.Fatalf("backend status/body must not be shown, got:\n%s", view)
	}

	// Keys are swallowed until the alert is dismissed.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(model)
	if m.inputs[fieldTitle].Value() != "Outage" {
		t.Fatalf("alert should block typing")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if m.alert != "" {
		t.Fatalf("enter should dismiss the alert")
	}
	if backend.countRequests("GET") != 0 {
		t.Fatalf("no refresh expected after a failed create")
	}
}

func TestSubmitBlockedOnMissingField(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(t, backend)
	fillForm(&m, "Outage", "  ", "payments")

	if cmd := m.submit(); cmd != nil {
		t.Fatalf("expected no request with a blank description")
	}
	if !m.invalid[fieldDescription] || m.invalid[fieldTitle] {
		t.Fatalf("expected only description marked, got %v", m.invalid)
	}
	if m.focus != fieldDescription {
		t.Fatalf("expected focus on the first invalid field, got %d", m.focus)
	}
	if !strings.Contains(plainView(m), "* required") {
		t.Fatalf("expected required marker in view")
	}
	if len(backend.requests) != 0 {
		t.Fatalf("expected no requests, got %v", backend.requests)
	}
}

func TestSubmitSendsFieldsAsTyped(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(t, backend)
	fillForm(&m, "  Outage ", "DB down\t", " payments")

	cmd := m.submit()
	if cmd == nil {
		t.Fatalf("expected padded values to pass the required check")
	}
	m.Update(cmd())

	if len(backend.posts) != 1 {
		t.Fatalf("expected one post body, got %d", len(backend.posts))
	}
	want := map[string]any{"title": "  Outage ", "description": "DB down\t", "service": " payments"}
	for k, v := range want {
		if backend.posts[0][k] != v {
			t.Fatalf("post body %s = %q, want %q", k, backend.posts[0][k], v)
		}
	}
}

func TestFetchFailureKeepsPreviousIncidents(t *testing.T) {
	backend := &fakeBackend{failGet: true}
	m := newTestModel(t, backend)
	m.incidents = []Incident{{ID: json.Number("9"), Title: "Stale"}}

	updated, cmd := m.Update(m.fetchCmd()())
	m = updated.(model)
	if cmd != nil {
		t.Fatalf("read failure must not retry")
	}
	if len(m.incidents) != 1 || m.incidents[0].Title != "Stale" {
		t.Fatalf("expected stale incidents to survive, got %+v", m.incidents)
	}
	if m.alert != "" {
		t.Fatalf("read failure must not raise an alert")
	}
}

func TestEnterAdvancesThenSubmits(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	fillForm(&m, "a", "b", "c")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if cmd != nil || m.focus != fieldDescription {
		t.Fatalf("enter on title should move to description")
	}
	m.setFocus(fieldService)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the last field should submit")
	}
}

func TestDisplayID(t *testing.T) {
	tests := []struct {
		id   any
		want string
	}{
		{json.Number("1"), "#1"},
		{"uuid", "#uuid"},
		{nil, "#?"},
	}
	for _, tt := range tests {
		if got := displayID(tt.id); got != tt.want {
			t.Fatalf("displayID(%v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
