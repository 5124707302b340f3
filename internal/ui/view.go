package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()
	base := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	area := m.screenArea()
	var layers []Layer
	if l := m.renderToast(area); l != nil {
		layers = append(layers, l)
	}
	if m.formVisible {
		layers = append(layers, m.form.Layer(area))
	}
	if m.showHelp {
		layers = append(layers, overlayLayer(renderHelpOverlay(m.keys), area))
	}
	if m.alert != nil {
		layers = append(layers, m.alert.Layer(area))
	}
	return composeLayers(base, m.width, m.height, layers...)
}

func (m *App) renderHeader() string {
	title := "INCIDENTDESK"
	if m.version != "" {
		title += " " + m.version
	}
	left := styleAppHeader().Render(title)

	var status string
	switch {
	case m.refreshInFlight:
		status = m.spinner.View() + " Loading..."
	case !m.lastRefresh.IsZero():
		status = fmt.Sprintf("%d incidents · updated %s", m.list.Len(), FormatRelativeTime(m.lastRefresh))
	}
	right := styleStatsDim().Render(status)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *App) renderBody() string {
	height := m.bodyHeight()
	listWidth, detailWidth := m.paneWidths()

	listStyle := stylePaneFocused()
	if m.detailOpen() {
		listStyle = stylePane()
	}
	innerWidth := max(listWidth-paneBorderPadding, 1)
	innerHeight := max(height-paneBorderPadding, 1)
	listPane := listStyle.
		Width(innerWidth).
		Height(innerHeight).
		Render(m.list.View(innerWidth, innerHeight))

	if !m.detailOpen() {
		return listPane
	}
	detailPane := stylePaneFocused().
		Width(max(detailWidth-paneBorderPadding, 1)).
		Height(innerHeight).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}
