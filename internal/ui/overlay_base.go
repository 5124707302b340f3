package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"incidentdesk/internal/ui/theme"
)

// Box widths are lipgloss Width values: padding is inside, the border adds
// two more columns outside.
const (
	alertBoxWidth = 48
	formBoxWidth  = 64
	minBoxWidth   = 32
	boxPadding    = 2
)

// fitBoxWidth keeps a two-cell margin around a modal on narrow terminals.
// A termWidth of zero means no resize has arrived yet.
func fitBoxWidth(want, termWidth int) int {
	if termWidth <= 0 {
		return want
	}
	return max(min(want, termWidth-6), minBoxWidth)
}

func boxContentWidth(boxWidth int) int {
	return max(boxWidth-2*boxPadding, 1)
}

// modalBuilder assembles a modal: a title over a rule, body lines, then a
// rule and centered key hints.
type modalBuilder struct {
	boxWidth int
	lines    []string
}

func newModalBuilder(boxWidth int) *modalBuilder {
	return &modalBuilder{boxWidth: boxWidth, lines: make([]string, 0, 16)}
}

func (b *modalBuilder) contentWidth() int { return boxContentWidth(b.boxWidth) }

func (b *modalBuilder) rule() string {
	return styleModalRule().Render(strings.Repeat("─", b.contentWidth()))
}

func (b *modalBuilder) title(text string) *modalBuilder {
	b.lines = append(b.lines, styleModalTitle().Render(text), b.rule(), "")
	return b
}

func (b *modalBuilder) line(text string) *modalBuilder {
	b.lines = append(b.lines, text)
	return b
}

func (b *modalBuilder) gap() *modalBuilder { return b.line("") }

// field adds a labelled input box.
func (b *modalBuilder) field(label, box string) *modalBuilder {
	b.lines = append(b.lines, styleFieldLabel().Render(label), box)
	return b
}

func (b *modalBuilder) hints(hints ...footerHint) *modalBuilder {
	pills := make([]string, 0, len(hints))
	for _, h := range hints {
		pills = append(pills, keyPill(h.key, h.desc))
	}
	row := lipgloss.NewStyle().
		Width(b.contentWidth()).
		Align(lipgloss.Center).
		Render(strings.Join(pills, "  "))
	b.lines = append(b.lines, b.rule(), row)
	return b
}

// render frames the lines with one of styleModal or styleModalAlert.
func (b *modalBuilder) render(frame lipgloss.Style) string {
	return frame.Width(b.boxWidth).Render(strings.Join(b.lines, "\n"))
}

func styleModal() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, boxPadding)
}

func styleModalAlert() lipgloss.Style {
	return styleModal().BorderForeground(theme.Current().Error())
}

func styleModalTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleModalRule() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary())
}

func styleFieldLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary()).Bold(true)
}

type fieldState int

const (
	fieldIdle fieldState = iota
	fieldFocused
	fieldMissing
)

// styleFieldBox borders a form input: green when focused, red when a
// required value is missing.
func styleFieldBox(width int, state fieldState) lipgloss.Style {
	border := theme.Current().BorderNormal()
	switch state {
	case fieldFocused:
		border = theme.Current().Success()
	case fieldMissing:
		border = theme.Current().Error()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}
