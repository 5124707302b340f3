package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"incidentdesk/internal/config"
	appErrors "incidentdesk/internal/errors"
	"incidentdesk/internal/incident"
	"incidentdesk/internal/ui/theme"
)

const (
	minListWidth      = 24
	minDetailWidth    = 30
	detailWidthRatio  = 0.45
	headerHeight      = 1
	footerHeight      = 1
	paneBorderPadding = 2
)

var (
	clipboardWriteAll = clipboard.WriteAll
	saveTheme         = config.SaveTheme
)

// Config configures the UI application.
type Config struct {
	Client         incident.Client
	Version        string // shown in the header
	Endpoint       string // shown in the footer
	RequestTimeout time.Duration
	AutoRefresh    time.Duration // zero disables the ticker
	OutputFormat   string
}

// App is the Bubble Tea model for the decomposed incident client. It owns
// the incident list and the selection; the list, form and detail
// components only talk back through messages and the form's callback.
type App struct {
	client         incident.Client
	keys           KeyMap
	requestTimeout time.Duration
	autoRefresh    time.Duration
	version        string
	endpoint       string

	list     IncidentList
	selected *incident.Incident
	detail   *IncidentDetail
	form     *IncidentForm

	formVisible bool
	alert       *AlertOverlay
	showHelp    bool

	spinner         spinner.Model
	refreshInFlight bool
	readSeq         uint64 // last list read issued
	appliedSeq      uint64 // newest list reply applied
	lastRefresh     time.Time

	toast toast

	sessionStart time.Time
	initialStats Stats
	loadedOnce   bool
	reported     int

	width  int
	height int
	ready  bool
}

// NewApp builds the model. Nothing is fetched until Init runs.
func NewApp(cfg Config) (*App, error) {
	if cfg.Client == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "incident client is required", nil)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	keys := DefaultKeyMap()
	app := &App{
		client:         cfg.Client,
		keys:           keys,
		requestTimeout: cfg.RequestTimeout,
		autoRefresh:    cfg.AutoRefresh,
		version:        cfg.Version,
		endpoint:       strings.TrimSpace(cfg.Endpoint),
		detail:         NewIncidentDetail(cfg.OutputFormat, keys),
		spinner:        sp,
		sessionStart:   timeNow(),
	}
	app.form = NewIncidentForm(cfg.Client, cfg.RequestTimeout, app.handleIncidentCreated)
	return app, nil
}

// Init loads the list once on mount.
func (m *App) Init() tea.Cmd {
	return tea.Batch(m.forceRefresh(), scheduleTick(m.autoRefresh))
}

// Incidents returns the current list contents.
func (m *App) Incidents() []incident.Incident { return m.list.incidents }

// Selected returns the incident open in the detail pane.
func (m *App) Selected() (incident.Incident, bool) {
	if m.selected == nil {
		return incident.Incident{}, false
	}
	return *m.selected, true
}

func (m *App) detailOpen() bool { return m.selected != nil }

func (m *App) selectCurrent() {
	inc, ok := m.list.Current()
	if !ok {
		return
	}
	m.selected = &inc
	m.detail.SetIncident(inc)
	m.layout()
}

func (m *App) closeDetail() {
	m.selected = nil
	m.layout()
}

func (m *App) openForm() tea.Cmd {
	m.formVisible = true
	m.showHelp = false
	return m.form.Focus()
}

// handleIncidentCreated is the form's success callback: hide the form,
// confirm, and re-read the list.
func (m *App) handleIncidentCreated(created incident.Incident) tea.Cmd {
	m.formVisible = false
	m.reported++
	m.showToast(toastCreated, "Incident "+created.ID.Display()+" reported")
	return tea.Batch(m.forceRefresh(), scheduleToastTick())
}

func (m *App) copySelectedID() tea.Cmd {
	inc, ok := m.Selected()
	if !ok {
		inc, ok = m.list.Current()
	}
	if !ok || inc.ID.IsZero() {
		return nil
	}
	if err := clipboardWriteAll(inc.ID.String()); err != nil {
		m.showToast(toastError, "Copy failed: "+err.Error())
		return scheduleToastTick()
	}
	m.showToast(toastCopied, "Copied "+inc.ID.Display()+" to clipboard.")
	return scheduleToastTick()
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	if err := saveTheme(name); err != nil {
		m.showToast(toastError, "Theme not saved: "+err.Error())
	} else {
		m.showToast(toastTheme, "Theme: "+name)
	}
	if m.selected != nil {
		m.detail.refresh()
	}
	return scheduleToastTick()
}

// layout sizes the detail pane from the terminal size.
func (m *App) layout() {
	if !m.ready {
		return
	}
	_, detailWidth := m.paneWidths()
	m.detail.SetSize(detailWidth-paneBorderPadding, m.bodyHeight()-paneBorderPadding)
	m.form.SetTermWidth(m.width)
}

func (m *App) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		h = 3
	}
	return h
}

func (m *App) paneWidths() (list, detail int) {
	if !m.detailOpen() {
		return m.width, 0
	}
	detail = int(float64(m.width) * detailWidthRatio)
	if detail < minDetailWidth {
		detail = minDetailWidth
	}
	list = m.width - detail
	if list < minListWidth {
		list = minListWidth
		detail = max(m.width-list, minDetailWidth)
	}
	return list, detail
}
