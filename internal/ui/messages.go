package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"incidentdesk/internal/incident"
)

type tickMsg struct{}

func scheduleTick(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// incidentsLoadedMsg answers the list read numbered seq.
type incidentsLoadedMsg struct {
	seq       uint64
	incidents []incident.Incident
	err       error
}

type incidentCreatedMsg struct {
	request  incident.CreateRequest
	incident incident.Incident
	err      error
}

type showAlertMsg struct {
	text string
}

// DetailClosedMsg is sent by IncidentDetail when the user closes it.
type DetailClosedMsg struct{}

// AlertDismissedMsg is sent when the user acknowledges the alert.
type AlertDismissedMsg struct{}

// FormHiddenMsg is sent when the user hides the report form. The form keeps
// its values.
type FormHiddenMsg struct{}
