package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"incidentdesk/internal/debug"
	"incidentdesk/internal/incident"
)

// CreateFailedMessage is the only text the user sees when a create fails.
const CreateFailedMessage = "Failed to submit incident"

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldCount
)

var formFieldNames = [formFieldCount]string{"title", "description"}

// IncidentForm collects a title and description and submits them through
// the client. It never refreshes the list itself; onCreated is the only way
// success leaves the form.
type IncidentForm struct {
	client    incident.Client
	timeout   time.Duration
	onCreated func(incident.Incident) tea.Cmd
	keys      KeyMap

	title       textinput.Model
	description textarea.Model
	focus       int
	invalid     map[string]bool
	pending     int
	termWidth   int
}

// NewIncidentForm creates an empty form. onCreated may be nil.
func NewIncidentForm(client incident.Client, timeout time.Duration, onCreated func(incident.Incident) tea.Cmd) *IncidentForm {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Short summary"
	title.CharLimit = 200

	description := NewBaseTextarea(1, 4)
	description.Placeholder = "What happened?"

	f := &IncidentForm{
		client:      client,
		timeout:     timeout,
		onCreated:   onCreated,
		keys:        DefaultKeyMap(),
		title:       title,
		description: description,
		invalid:     map[string]bool{},
	}
	f.SetTermWidth(0)
	f.setFocus(formFieldTitle)
	return f
}

// Values returns the current field contents.
func (f *IncidentForm) Values() (title, description string) {
	return f.title.Value(), f.description.Value()
}

// SetValues replaces the field contents.
func (f *IncidentForm) SetValues(title, description string) {
	f.title.SetValue(title)
	f.description.SetValue(description)
}

// Clear empties both fields and moves focus back to the title.
func (f *IncidentForm) Clear() {
	f.title.Reset()
	f.description.Reset()
	f.invalid = map[string]bool{}
	f.setFocus(formFieldTitle)
}

// Submitting reports whether a create is still in flight.
func (f *IncidentForm) Submitting() bool { return f.pending > 0 }

// SetTermWidth fits the overlay, and the inputs inside it, to the terminal.
func (f *IncidentForm) SetTermWidth(width int) {
	f.termWidth = width
	text := f.fieldWidth() - 2
	f.title.Width = max(text-1, 1)
	f.description.SetWidth(max(text, 1))
}

func (f *IncidentForm) boxWidth() int { return fitBoxWidth(formBoxWidth, f.termWidth) }

// fieldWidth is the lipgloss width of an input box; with its border it
// spans the overlay's content area.
func (f *IncidentForm) fieldWidth() int { return boxContentWidth(f.boxWidth()) - 2 }

// Focus returns the blink command for the focused field.
func (f *IncidentForm) Focus() tea.Cmd {
	if f.focus == formFieldDescription {
		return f.description.Focus()
	}
	return f.title.Focus()
}

func (f *IncidentForm) setFocus(field int) {
	f.focus = (field + formFieldCount) % formFieldCount
	if f.focus == formFieldTitle {
		f.title.Focus()
		f.description.Blur()
	} else {
		f.title.Blur()
		f.description.Focus()
	}
}

// Submit validates the fields and returns the create command, or nil when a
// required field is blank. Nothing guards against a second submit while one
// is in flight; each call issues its own request.
func (f *IncidentForm) Submit() tea.Cmd {
	req := incident.CreateRequest{
		Title:       f.title.Value(),
		Description: f.description.Value(),
	}
	if err := req.Validate(); err != nil {
		f.invalid = map[string]bool{}
		for _, field := range incident.InvalidFields(err) {
			f.invalid[field] = true
		}
		for i, name := range formFieldNames {
			if f.invalid[name] {
				f.setFocus(i)
				break
			}
		}
		debug.Logf("incident form rejected: %v", err)
		return nil
	}
	f.invalid = map[string]bool{}
	f.pending++
	return createIncidentCmd(f.client, req.Normalize(), f.timeout)
}

// Update handles keys while the form is visible and the result of its own
// create requests.
func (f *IncidentForm) Update(msg tea.Msg) (*IncidentForm, tea.Cmd) {
	switch msg := msg.(type) {
	case incidentCreatedMsg:
		return f, f.handleCreated(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Escape):
			return f, func() tea.Msg { return FormHiddenMsg{} }
		case key.Matches(msg, f.keys.Submit):
			return f, f.Submit()
		case key.Matches(msg, f.keys.NextField):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(msg, f.keys.PrevField):
			f.setFocus(f.focus - 1)
			return f, nil
		case msg.Type == tea.KeyEnter && f.focus == formFieldTitle:
			f.setFocus(formFieldDescription)
			return f, nil
		}
	}

	var cmd tea.Cmd
	if f.focus == formFieldTitle {
		f.title, cmd = f.title.Update(msg)
		if strings.TrimSpace(f.title.Value()) != "" {
			delete(f.invalid, "title")
		}
	} else {
		f.description, cmd = f.description.Update(msg)
		if strings.TrimSpace(f.description.Value()) != "" {
			delete(f.invalid, "description")
		}
	}
	return f, cmd
}

func (f *IncidentForm) handleCreated(msg incidentCreatedMsg) tea.Cmd {
	if f.pending > 0 {
		f.pending--
	}
	if msg.err != nil {
		debug.Error("create incident failed",
			zap.String("title", msg.request.Title),
			zap.Error(msg.err),
		)
		return func() tea.Msg { return showAlertMsg{text: CreateFailedMessage} }
	}

	f.Clear()
	if f.onCreated == nil {
		return nil
	}
	return f.onCreated(msg.incident)
}

// View renders the form overlay.
func (f *IncidentForm) View() string {
	header := "REPORT INCIDENT"
	if f.Submitting() {
		header += "  (submitting…)"
	}
	b := newModalBuilder(f.boxWidth()).title(header)
	b.field("Title", f.fieldBox(formFieldTitle, f.title.View())).
		gap().
		field("Description", f.fieldBox(formFieldDescription, f.description.View()))

	if len(f.invalid) > 0 {
		b.gap()
		for _, name := range formFieldNames {
			if f.invalid[name] {
				b.line(styleErrorText().Render("* " + name + " is required"))
			}
		}
	}
	return b.gap().
		hints(footerHint{"Tab", "Next"}, footerHint{"^S", "Submit"}, footerHint{"esc", "Hide"}).
		render(styleModal())
}

func (f *IncidentForm) fieldBox(field int, content string) string {
	state := fieldIdle
	switch {
	case f.invalid[formFieldNames[field]]:
		state = fieldMissing
	case f.focus == field:
		state = fieldFocused
	}
	return styleFieldBox(f.fieldWidth(), state).Render(content)
}

// Layer returns the form as a centered overlay.
func (f *IncidentForm) Layer(area screenArea) Layer {
	return overlayLayer(f.View(), area)
}
