package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"incidentdesk/internal/domain"
	"incidentdesk/internal/incident"
)

// IncidentDetail shows every field of one incident in a scrollable pane.
type IncidentDetail struct {
	incident     incident.Incident
	viewport     viewport.Model
	keys         KeyMap
	outputFormat string
	width        int
	height       int
}

// NewIncidentDetail creates an empty detail pane. outputFormat selects the
// description renderer (rich, light, dark, plain).
func NewIncidentDetail(outputFormat string, keys KeyMap) *IncidentDetail {
	return &IncidentDetail{
		viewport:     viewport.New(40, 10),
		keys:         keys,
		outputFormat: outputFormat,
	}
}

// SetIncident replaces the displayed record and scrolls to the top.
func (d *IncidentDetail) SetIncident(inc incident.Incident) {
	d.incident = inc
	d.refresh()
	d.viewport.GotoTop()
}

// Incident returns the displayed record.
func (d *IncidentDetail) Incident() incident.Incident { return d.incident }

// SetSize resizes the viewport, keeping the scroll position.
func (d *IncidentDetail) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	d.width, d.height = width, height
	d.viewport.Width = width
	d.viewport.Height = height
	d.refresh()
}

func (d *IncidentDetail) refresh() {
	d.viewport.SetContent(d.renderContent())
}

// Update handles close and scroll keys.
func (d *IncidentDetail) Update(msg tea.Msg) (*IncidentDetail, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.CloseDetail):
		return d, func() tea.Msg { return DetailClosedMsg{} }
	case key.Matches(keyMsg, d.keys.Up):
		d.viewport.ScrollUp(1)
	case key.Matches(keyMsg, d.keys.Down):
		d.viewport.ScrollDown(1)
	case key.Matches(keyMsg, d.keys.PageUp):
		d.viewport.PageUp()
	case key.Matches(keyMsg, d.keys.PageDown):
		d.viewport.PageDown()
	case key.Matches(keyMsg, d.keys.Home):
		d.viewport.GotoTop()
	case key.Matches(keyMsg, d.keys.End):
		d.viewport.GotoBottom()
	}
	return d, nil
}

// View renders the viewport.
func (d *IncidentDetail) View() string {
	return d.viewport.View()
}

func (d *IncidentDetail) renderContent() string {
	inc := d.incident
	width := d.width
	if width <= 0 {
		width = d.viewport.Width
	}

	header := styleID().Render(inc.ID.Display()) + " " + styleText().Bold(true).Render(inc.Title)
	lines := []string{
		styleDetailHeader().Width(width).Render(header),
		"",
		fieldRow("Status", statusLabel(inc.Status)),
		fieldRow("Priority", priorityPill(inc.Priority)),
		fieldRow("Service", dashIfEmpty(inc.Service)),
		fieldRow("AI Severity", styleSeverity(inc.AISeverity).Render(dashIfEmpty(inc.AISeverity))),
		fieldRow("AI Category", styleCategory().Render(dashIfEmpty(inc.AICategory))),
		fieldRow("Created", formatTimestamp(inc.CreatedAt)),
		fieldRow("Updated", formatTimestamp(inc.UpdatedAt)),
		styleSectionHeader().Render("Description"),
	}

	description := strings.TrimSpace(inc.Description)
	if description == "" {
		lines = append(lines, styleStatsDim().Render("-"))
	} else {
		render := buildMarkdownRenderer(d.outputFormat, max(width-2, 10))
		lines = append(lines, render(description))
	}
	return strings.Join(lines, "\n")
}

func fieldRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styleField().Render(label+":"), " ", value)
}

func statusLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "-"
	}
	if s, err := domain.ParseStatus(raw); err == nil {
		return s.Label()
	}
	return raw
}

func priorityPill(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "-"
	}
	if p, err := domain.ParsePriority(raw); err == nil {
		return stylePriority().Render(strings.ToUpper(p.Label()))
	}
	return raw
}
