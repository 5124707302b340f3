// Package domain holds the incident vocabularies the backend is known to
// use. The client only uses them to colour values and to check CLI flags;
// values outside a vocabulary are still displayed verbatim.
package domain

import "strings"

// Status is the lifecycle state reported by the backend.
type Status string

const (
	StatusUnknown    Status = ""
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Priority is the user-facing urgency of an incident.
type Priority string

const (
	PriorityUnknown  Priority = ""
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var (
	statuses   = []string{string(StatusOpen), string(StatusInProgress), string(StatusResolved), string(StatusClosed)}
	priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityCritical)}
)

// Statuses lists the known statuses in workflow order.
func Statuses() []string { return append([]string(nil), statuses...) }

// Priorities lists the known priorities from least to most urgent.
func Priorities() []string { return append([]string(nil), priorities...) }

// ParseStatus normalises and validates a status flag value.
func ParseStatus(raw string) (Status, error) {
	v := normalize(raw)
	if !contains(statuses, v) {
		return StatusUnknown, invalidValueError("status", raw, statuses)
	}
	return Status(v), nil
}

// ParsePriority normalises and validates a priority flag value.
func ParsePriority(raw string) (Priority, error) {
	v := normalize(raw)
	if !contains(priorities, v) {
		return PriorityUnknown, invalidValueError("priority", raw, priorities)
	}
	return Priority(v), nil
}

// Label renders the status for humans ("in_progress" -> "In Progress").
func (s Status) Label() string { return humanize(string(s)) }

// IsTerminal reports whether the incident is finished.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Label renders the priority for humans.
func (p Priority) Label() string { return humanize(string(p)) }

// Rank orders priorities; unknown values rank below low.
func (p Priority) Rank() int { return indexOf(priorities, string(p)) }

func normalize(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(v, "-", "_")
}

func contains(values []string, v string) bool {
	return indexOf(values, v) >= 0
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

func humanize(v string) string {
	if v == "" {
		return ""
	}
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
