package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"incidentdesk/internal/incident"
)

const emptyListMessage = "No incidents found."

// IncidentList is the scrollable list pane. It owns the cursor; the App owns
// the selection.
type IncidentList struct {
	incidents []incident.Incident
	cursor    int
	offset    int
}

// SetIncidents replaces the list, keeping the cursor on the same incident
// when it is still present.
func (l *IncidentList) SetIncidents(items []incident.Incident) {
	var current incident.ID
	if inc, ok := l.Current(); ok {
		current = inc.ID
	}
	l.incidents = items
	l.cursor = 0
	if current != "" {
		for i, inc := range items {
			if inc.ID == current {
				l.cursor = i
				break
			}
		}
	}
	l.clamp()
}

// Len returns the number of incidents in the list.
func (l *IncidentList) Len() int { return len(l.incidents) }

// Current returns the incident under the cursor.
func (l *IncidentList) Current() (incident.Incident, bool) {
	if l.cursor < 0 || l.cursor >= len(l.incidents) {
		return incident.Incident{}, false
	}
	return l.incidents[l.cursor], true
}

// Move shifts the cursor by delta rows, clamped to the list.
func (l *IncidentList) Move(delta int) {
	l.cursor += delta
	l.clamp()
}

// Top moves the cursor to the first row.
func (l *IncidentList) Top() { l.cursor = 0 }

// Bottom moves the cursor to the last row.
func (l *IncidentList) Bottom() {
	l.cursor = len(l.incidents) - 1
	l.clamp()
}

func (l *IncidentList) clamp() {
	if l.cursor >= len(l.incidents) {
		l.cursor = len(l.incidents) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// View renders rows of "#id title" with "severity | category" aligned right.
func (l *IncidentList) View(width, height int) string {
	if len(l.incidents) == 0 {
		return styleStatsDim().Italic(true).Render(emptyListMessage)
	}
	if height < 1 {
		height = 1
	}

	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+height {
		l.offset = l.cursor - height + 1
	}
	end := min(l.offset+height, len(l.incidents))

	rows := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		rows = append(rows, renderListRow(l.incidents[i], width, i == l.cursor))
	}
	return strings.Join(rows, "\n")
}

func renderListRow(inc incident.Incident, width int, selected bool) string {
	severity := dashIfEmpty(inc.AISeverity)
	category := dashIfEmpty(inc.AICategory)
	right := styleSeverity(inc.AISeverity).Render(severity) +
		styleStatsDim().Render(" | ") +
		styleCategory().Render(category)

	id := styleID().Render(inc.ID.Display())
	titleWidth := width - lipgloss.Width(id) - lipgloss.Width(right) - 4
	title := inc.Title
	if titleWidth > 0 {
		title = ansi.Truncate(title, titleWidth, "…")
	}
	left := " " + id + " " + styleText().Render(title)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	row := left + strings.Repeat(" ", gap) + right + " "
	if selected {
		return styleSelected().Render(ansi.Strip(row))
	}
	return row
}

func dashIfEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
