package domain

import (
	"testing"

	appErrors "incidentdesk/internal/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{"open", StatusOpen, false},
		{"  In-Progress ", StatusInProgress, false},
		{"RESOLVED", StatusResolved, false},
		{"", StatusUnknown, true},
		{"blocked", StatusUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				if !appErrors.IsCode(err, appErrors.CodeInvalidRequest) {
					t.Fatalf("expected invalid_request code, got %s", appErrors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePriorityAndRank(t *testing.T) {
	p, err := ParsePriority("Critical")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Rank() <= PriorityHigh.Rank() {
		t.Fatalf("critical should outrank high")
	}
	if Priority("urgent").Rank() != -1 {
		t.Fatalf("unknown priority should rank -1")
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestLabels(t *testing.T) {
	if got := StatusInProgress.Label(); got != "In Progress" {
		t.Fatalf("Label() = %q", got)
	}
	if got := Status("").Label(); got != "" {
		t.Fatalf("blank status label should be blank, got %q", got)
	}
	if !StatusClosed.IsTerminal() || StatusOpen.IsTerminal() {
		t.Fatalf("IsTerminal mismatch")
	}
}

func TestClassificationVocabulary(t *testing.T) {
	if !Severity("HIGH").Known() {
		t.Fatalf("severity match should be case-insensitive")
	}
	if Severity("infra").Known() {
		t.Fatalf("infra is not a known severity")
	}
	if Category("infra").Known() {
		t.Fatalf("infra is not a known category")
	}
	if SeverityHigh.Rank() <= SeverityLow.Rank() {
		t.Fatalf("high should outrank low")
	}
	if Severity("").Rank() != -1 {
		t.Fatalf("missing severity should rank -1")
	}
}
