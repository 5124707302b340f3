package ui

import "github.com/charmbracelet/bubbles/textarea"

// NewBaseTextarea returns a textarea without prompt or line numbers so the
// full interior is usable input space.
func NewBaseTextarea(width, height int) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	return ta
}
