package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"incidentdesk/internal/debug"
	"incidentdesk/internal/incident"
)

const defaultRequestTimeout = 10 * time.Second

func loadIncidentsCmd(client incident.Client, timeout time.Duration, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		incidents, err := client.List(ctx)
		return incidentsLoadedMsg{seq: seq, incidents: incidents, err: err}
	}
}

func createIncidentCmd(client incident.Client, req incident.CreateRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		created, err := client.Create(ctx, req)
		return incidentCreatedMsg{request: req, incident: created, err: err}
	}
}

// startRefresh is used by the auto refresh ticker and skips when a read is
// already running.
func (m *App) startRefresh() tea.Cmd {
	if m.refreshInFlight {
		return nil
	}
	return m.forceRefresh()
}

// forceRefresh always issues a list read, numbered so replies that arrive
// out of order can be told apart.
func (m *App) forceRefresh() tea.Cmd {
	m.readSeq++
	m.refreshInFlight = true
	return tea.Batch(m.spinner.Tick, loadIncidentsCmd(m.client, m.requestTimeout, m.readSeq))
}

// applyRefresh replaces the list wholesale. A reply older than one already
// applied is dropped, and the spinner keeps going until the newest read
// issued has answered. A failed read leaves the previous list on screen
// and is only logged.
func (m *App) applyRefresh(msg incidentsLoadedMsg) {
	if msg.seq < m.appliedSeq {
		debug.Logf("dropping stale list reply %d (have %d)", msg.seq, m.appliedSeq)
		return
	}
	m.appliedSeq = msg.seq
	m.refreshInFlight = msg.seq < m.readSeq
	if msg.err != nil {
		debug.Warn("failed to fetch incidents", zap.String("endpoint", m.endpoint), zap.Error(msg.err))
		return
	}
	m.list.SetIncidents(msg.incidents)
	m.lastRefresh = timeNow()
	if !m.loadedOnce {
		m.loadedOnce = true
		m.initialStats = ComputeStats(msg.incidents)
	}

	if m.selected == nil {
		return
	}
	for _, inc := range msg.incidents {
		if inc.ID == m.selected.ID {
			updated := inc
			m.selected = &updated
			m.detail.SetIncident(updated)
			return
		}
	}
}
