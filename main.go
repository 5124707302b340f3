package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"incidentdesk/internal/config"
	"incidentdesk/internal/debug"
)

// --- Styles ---
var (
	cPurple    = lipgloss.Color("99")
	cRed       = lipgloss.Color("196")
	cOrange    = lipgloss.Color("208")
	cGold      = lipgloss.Color("220")
	cGray      = lipgloss.Color("240")
	cLightGray = lipgloss.Color("250")
	cWhite     = lipgloss.Color("255")
	cField     = lipgloss.Color("63")

	styleAppHeader = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cPurple).
			Bold(true).
			Padding(0, 1)

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(cGray)

	styleLabel      = lipgloss.NewStyle().Foreground(cField).Bold(true).Width(13)
	styleRequired   = lipgloss.NewStyle().Foreground(cRed)
	styleCardTitle  = lipgloss.NewStyle().Foreground(cGold).Bold(true)
	styleCardText   = lipgloss.NewStyle().Foreground(cWhite)
	styleCardMeta   = lipgloss.NewStyle().Foreground(cLightGray)
	styleSeverity   = lipgloss.NewStyle().Foreground(cOrange).Bold(true)
	styleEmpty      = lipgloss.NewStyle().Foreground(cGray).Italic(true)
	styleFooterHint = lipgloss.NewStyle().Foreground(cLightGray)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cGray).
			Padding(0, 1)

	styleAlert = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(cRed).
			Foreground(cWhite).
			Padding(1, 3).
			Bold(true)
)

const (
	incidentsPath   = "/api/v1/incidents"
	submitFailedMsg = "Failed to submit incident"
	notAvailable    = "N/A"
)

// --- Data Structures ---

type Incident struct {
	ID          any     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Service     string  `json:"service"`
	AISeverity  *string `json:"ai_severity"`
	AICategory  *string `json:"ai_category"`
}

type incidentPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Service     string `json:"service" validate:"required"`
}

type incidentsLoadedMsg struct {
	incidents []Incident
	err       error
}

type incidentSubmittedMsg struct {
	incident Incident
	err      error
}

const (
	fieldTitle = iota
	fieldDescription
	fieldService
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Service"}

// --- Model ---

type model struct {
	incidents []Incident

	inputs  [fieldCount]textinput.Model
	focus   int
	invalid map[int]bool
	alert   string

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// --- Helpers ---

func valueOrNA(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return notAvailable
	}
	return *v
}

func displayID(id any) string {
	switch v := id.(type) {
	case nil:
		return "#?"
	case json.Number:
		return "#" + v.String()
	default:
		return fmt.Sprintf("#%v", v)
	}
}

var payloadValidator = validator.New()

// --- API ---

func (m model) endpoint() string {
	return strings.TrimRight(m.baseURL, "/") + incidentsPath
}

func fetchIncidents(ctx context.Context, client *http.Client, url string) ([]Incident, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var incidents []Incident
	if err := dec.Decode(&incidents); err != nil {
		return nil, fmt.Errorf("decode incidents: %w", err)
	}
	return incidents, nil
}

func postIncident(ctx context.Context, client *http.Client, url string, payload incidentPayload) (Incident, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Incident{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Incident{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Incident{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Incident{}, fmt.Errorf("POST %s: status %d", url, resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var created Incident
	if err := dec.Decode(&created); err != nil && err != io.EOF {
		return Incident{}, fmt.Errorf("decode incident: %w", err)
	}
	return created, nil
}

func (m model) fetchCmd() tea.Cmd {
	client, url, timeout := m.httpClient, m.endpoint(), m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		incidents, err := fetchIncidents(ctx, client, url)
		return incidentsLoadedMsg{incidents: incidents, err: err}
	}
}

func (m model) submitCmd(payload incidentPayload) tea.Cmd {
	client, url, timeout := m.httpClient, m.endpoint(), m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		created, err := postIncident(ctx, client, url, payload)
		return incidentSubmittedMsg{incident: created, err: err}
	}
}

// --- Form ---

func newModel(baseURL string, timeout time.Duration, client *http.Client) model {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	m := model{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: client,
		invalid:    map[int]bool{},
		viewport:   viewport.New(0, 0),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.Prompt = ""
		ti.CharLimit = 500
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Focus()
	return m
}

func (m *model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

// payload returns the fields exactly as typed.
func (m model) payload() incidentPayload {
	return incidentPayload{
		Title:       m.inputs[fieldTitle].Value(),
		Description: m.inputs[fieldDescription].Value(),
		Service:     m.inputs[fieldService].Value(),
	}
}

// trimmed is only used for the required check; a whitespace-only field
// counts as empty.
func (p incidentPayload) trimmed() incidentPayload {
	return incidentPayload{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Service:     strings.TrimSpace(p.Service),
	}
}

// submit marks empty required fields, or sends the form as-is.
func (m *model) submit() tea.Cmd {
	p := m.payload()
	m.invalid = map[int]bool{}
	if err := payloadValidator.Struct(p.trimmed()); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "Title":
					m.invalid[fieldTitle] = true
				case "Description":
					m.invalid[fieldDescription] = true
				case "Service":
					m.invalid[fieldService] = true
				}
			}
		}
		for i := 0; i < fieldCount; i++ {
			if m.invalid[i] {
				m.setFocus(i)
				break
			}
		}
		return nil
	}
	return m.submitCmd(p)
}

func (m *model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.invalid = map[int]bool{}
	m.setFocus(fieldTitle)
}

// --- Update ---

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case incidentsLoadedMsg:
		if msg.err != nil {
			debug.Warn("failed to fetch incidents", zap.String("url", m.endpoint()), zap.Error(msg.err))
			return m, nil
		}
		m.incidents = msg.incidents
		m.refreshCards()
		return m, nil

	case incidentSubmittedMsg:
		if msg.err != nil {
			debug.Error("failed to submit incident", zap.String("url", m.endpoint()), zap.Error(msg.err))
			m.alert = submitFailedMsg
			return m, nil
		}
		debug.Logf("submitted incident %s", displayID(msg.incident.ID))
		m.clearForm()
		return m, m.fetchCmd()

	case tea.KeyMsg:
		if m.alert != "" {
			switch msg.String() {
			case "enter", "esc", " ":
				m.alert = ""
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if strings.TrimSpace(m.inputs[m.focus].Value()) != "" {
			delete(m.invalid, m.focus)
		}
		return m, cmd
	}
	return m, nil
}

// --- View ---

func (m *model) resize() {
	formHeight := fieldCount + 4
	m.viewport.Width = max(m.width-4, 10)
	m.viewport.Height = max(m.height-formHeight-5, 3)
	for i := range m.inputs {
		m.inputs[i].Width = max(m.width-22, 10)
	}
	m.refreshCards()
}

func (m *model) refreshCards() {
	m.viewport.SetContent(m.renderCards(max(m.viewport.Width, 40)))
}

func (m model) renderCards(width int) string {
	if len(m.incidents) == 0 {
		return styleEmpty.Render("No incidents found.")
	}
	cards := make([]string, 0, len(m.incidents))
	for _, inc := range m.incidents {
		lines := []string{
			styleCardTitle.Render(displayID(inc.ID) + " " + inc.Title),
			styleCardText.Render(inc.Description),
			styleCardMeta.Render("Service: " + inc.Service),
			styleCardMeta.Render("Severity:") + " " + styleSeverity.Render(valueOrNA(inc.AISeverity)),
			styleCardMeta.Render("Category: " + valueOrNA(inc.AICategory)),
		}
		cards = append(cards, styleCard.Width(width-2).Render(strings.Join(lines, "\n")))
	}
	return strings.Join(cards, "\n")
}

func (m model) renderForm() string {
	var b strings.Builder
	for i := range m.inputs {
		label := styleLabel.Render(fieldLabels[i] + ":")
		line := label + m.inputs[i].View()
		if m.invalid[i] {
			line += " " + styleRequired.Render("* required")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := styleAppHeader.Render("REPORT INCIDENT") + " " + fmt.Sprintf("Incidents: %d", len(m.incidents))
	form := stylePane.Width(m.width - 2).Render(m.renderForm())
	list := stylePane.Width(m.width - 2).Render(m.viewport.View())
	footer := styleFooterHint.Render(" [ tab ] Next field  [ enter ] Submit  [ pgup/pgdn ] Scroll  [ ctrl+c ] Quit")

	body := lipgloss.JoinVertical(lipgloss.Left, header, form, list, footer)
	if m.alert == "" {
		return body
	}
	alert := styleAlert.Render(m.alert + "\n\n" + styleFooterHint.Render("[ enter ] OK"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, alert)
}

func main() {
	baseURL := flag.String("base-url", "", "Incidents API base URL (default from config, http://localhost:8080)")
	timeout := flag.Duration("timeout", 0, "Per-request timeout (default from config, 10s)")
	debugFlag := flag.Bool("debug", false, "Also write debug lines to ~/.incidentdesk/debug.log (warnings are always logged)")
	flag.Parse()

	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := debug.Init(*debugFlag || config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer debug.Close()

	api := config.APISettings()
	if strings.TrimSpace(*baseURL) != "" {
		api.BaseURL = strings.TrimRight(*baseURL, "/")
	}
	if *timeout > 0 {
		api.Timeout = *timeout
	}

	p := tea.NewProgram(newModel(api.BaseURL, api.Timeout, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
