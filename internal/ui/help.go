package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

func helpRow(b key.Binding) []string {
	return []string{b.Help().Key, b.Help().Desc}
}

// getHelpSections derives the help text from the bindings themselves.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				helpRow(keys.Up),
				helpRow(keys.Home),
				helpRow(keys.End),
				helpRow(keys.PageUp),
				helpRow(keys.PageDown),
			},
		},
		{
			title: "ACTIONS",
			rows: [][]string{
				helpRow(keys.Enter),
				helpRow(keys.CloseDetail),
				helpRow(keys.NewIncident),
				helpRow(keys.Refresh),
				helpRow(keys.Copy),
				helpRow(keys.Theme),
				helpRow(keys.Quit),
			},
		},
		{
			title: "REPORT FORM",
			rows: [][]string{
				helpRow(keys.NextField),
				helpRow(keys.PrevField),
				helpRow(keys.Submit),
				helpRow(keys.Escape),
			},
		},
	}
}

// renderHelpOverlay builds the help modal; the caller positions it.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[0]),
		"",
		renderHelpSectionTable(sections[2]),
	)
	rightCol := renderHelpSectionTable(sections[1])
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	dividerWidth := max(lipgloss.Width(columns), 40)
	content := lipgloss.JoinVertical(lipgloss.Center,
		styleHelpTitle().Render("✦ INCIDENTDESK HELP ✦"),
		styleModalRule().Render(strings.Repeat("─", dividerWidth)),
		"",
		columns,
		"",
		styleStatsDim().Render("Press ? or Esc to close"),
	)
	return styleHelpOverlay().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpSectionHeader().Render(strings.Repeat("─", len(section.title)))

	// Hidden border adds an empty top row.
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, underline, tableStr)
}
