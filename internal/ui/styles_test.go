package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestMarkdownRendererPlainWraps(t *testing.T) {
	render := buildMarkdownRenderer("plain", 10)
	got := render("one two three four")
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("expected lines wrapped to 10, got %q", line)
		}
	}
	if strings.Contains(got, "**") {
		t.Fatalf("plain renderer should not touch markdown")
	}
	if render("**bold**") != "**bold**" {
		t.Fatalf("expected markdown left as-is in plain mode")
	}
}

func TestMarkdownRendererRichKeepsText(t *testing.T) {
	for _, format := range []string{"", "rich", "light"} {
		render := buildMarkdownRenderer(format, 40)
		got := ansi.Strip(render("Database **down** since 10:00"))
		if !strings.Contains(got, "down") || !strings.Contains(got, "Database") {
			t.Fatalf("format %q lost text: %q", format, got)
		}
	}
}

func TestMarkdownRendererUnknownStyleFallsBack(t *testing.T) {
	render := buildMarkdownRenderer("no-such-style", 20)
	if got := ansi.Strip(render("hello")); !strings.Contains(got, "hello") {
		t.Fatalf("expected fallback rendering, got %q", got)
	}
}
