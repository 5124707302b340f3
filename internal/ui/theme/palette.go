package theme

import "github.com/charmbracelet/lipgloss"

// Palette is a Theme described as data.
type Palette struct {
	PrimaryColor             lipgloss.AdaptiveColor
	SecondaryColor           lipgloss.AdaptiveColor
	AccentColor              lipgloss.AdaptiveColor
	ErrorColor               lipgloss.AdaptiveColor
	WarningColor             lipgloss.AdaptiveColor
	SuccessColor             lipgloss.AdaptiveColor
	InfoColor                lipgloss.AdaptiveColor
	TextColor                lipgloss.AdaptiveColor
	TextMutedColor           lipgloss.AdaptiveColor
	TextEmphasizedColor      lipgloss.AdaptiveColor
	BackgroundColor          lipgloss.AdaptiveColor
	BackgroundSecondaryColor lipgloss.AdaptiveColor
	BorderNormalColor        lipgloss.AdaptiveColor
	BorderFocusedColor       lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.PrimaryColor }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.SecondaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor              { return p.AccentColor }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.ErrorColor }
func (p Palette) Warning() lipgloss.AdaptiveColor             { return p.WarningColor }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.SuccessColor }
func (p Palette) Info() lipgloss.AdaptiveColor                { return p.InfoColor }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.TextMutedColor }
func (p Palette) TextEmphasized() lipgloss.AdaptiveColor      { return p.TextEmphasizedColor }
func (p Palette) Background() lipgloss.AdaptiveColor          { return p.BackgroundColor }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.BackgroundSecondaryColor }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.BorderNormalColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor       { return p.BorderFocusedColor }

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// TokyoNight is the default palette.
var TokyoNight = Palette{
	PrimaryColor:             c("#82aaff", "#2e7de9"),
	SecondaryColor:           c("#c099ff", "#9854f1"),
	AccentColor:              c("#ff966c", "#b15c00"),
	ErrorColor:               c("#ff757f", "#f52a65"),
	WarningColor:             c("#ffc777", "#8c6c3e"),
	SuccessColor:             c("#c3e88d", "#587539"),
	InfoColor:                c("#7dcfff", "#0db9d7"),
	TextColor:                c("#c8d3f5", "#3760bf"),
	TextMutedColor:           c("#636da6", "#848cb5"),
	TextEmphasizedColor:      c("#ffc777", "#8c6c3e"),
	BackgroundColor:          c("#222436", "#e1e2e7"),
	BackgroundSecondaryColor: c("#2f334d", "#c8c9ce"),
	BorderNormalColor:        c("#3b4261", "#a8aecb"),
	BorderFocusedColor:       c("#82aaff", "#2e7de9"),
}

// Nord follows https://www.nordtheme.com/docs/colors-and-palettes.
var Nord = Palette{
	PrimaryColor:             c("#88C0D0", "#5E81AC"),
	SecondaryColor:           c("#81A1C1", "#81A1C1"),
	AccentColor:              c("#8FBCBB", "#8FBCBB"),
	ErrorColor:               c("#BF616A", "#BF616A"),
	WarningColor:             c("#D08770", "#D08770"),
	SuccessColor:             c("#A3BE8C", "#A3BE8C"),
	InfoColor:                c("#88C0D0", "#5E81AC"),
	TextColor:                c("#ECEFF4", "#2E3440"),
	TextMutedColor:           c("#8B95A7", "#3B4252"),
	TextEmphasizedColor:      c("#ECEFF4", "#000000"),
	BackgroundColor:          c("#2E3440", "#ECEFF4"),
	BackgroundSecondaryColor: c("#3B4252", "#E5E9F0"),
	BorderNormalColor:        c("#434C5E", "#4C566A"),
	BorderFocusedColor:       c("#88C0D0", "#5E81AC"),
}

// Dracula follows https://draculatheme.com/contribute.
var Dracula = Palette{
	PrimaryColor:             c("#bd93f9", "#7e57c2"),
	SecondaryColor:           c("#8be9fd", "#0097a7"),
	AccentColor:              c("#f1fa8c", "#f9a825"),
	ErrorColor:               c("#ff5555", "#d32f2f"),
	WarningColor:             c("#ffb86c", "#ef6c00"),
	SuccessColor:             c("#50fa7b", "#388e3c"),
	InfoColor:                c("#8be9fd", "#1976d2"),
	TextColor:                c("#f8f8f2", "#212121"),
	TextMutedColor:           c("#6272a4", "#757575"),
	TextEmphasizedColor:      c("#f8f8f2", "#000000"),
	BackgroundColor:          c("#282a36", "#ffffff"),
	BackgroundSecondaryColor: c("#44475a", "#e0e0e0"),
	BorderNormalColor:        c("#6272a4", "#bdbdbd"),
	BorderFocusedColor:       c("#bd93f9", "#7e57c2"),
}

// Gruvbox follows the gruvbox dark/light medium palettes.
var Gruvbox = Palette{
	PrimaryColor:             c("#83a598", "#076678"),
	SecondaryColor:           c("#d3869b", "#8f3f71"),
	AccentColor:              c("#fabd2f", "#b57614"),
	ErrorColor:               c("#fb4934", "#9d0006"),
	WarningColor:             c("#fe8019", "#af3a03"),
	SuccessColor:             c("#b8bb26", "#79740e"),
	InfoColor:                c("#83a598", "#076678"),
	TextColor:                c("#ebdbb2", "#3c3836"),
	TextMutedColor:           c("#a89984", "#7c6f64"),
	TextEmphasizedColor:      c("#fabd2f", "#b57614"),
	BackgroundColor:          c("#282828", "#fbf1c7"),
	BackgroundSecondaryColor: c("#504945", "#ebdbb2"),
	BorderNormalColor:        c("#504945", "#bdae93"),
	BorderFocusedColor:       c("#83a598", "#076678"),
}
