package ui

import (
	"strings"
	"time"

	"incidentdesk/internal/domain"
	"incidentdesk/internal/incident"
)

// Stats counts incidents by AI severity.
type Stats struct {
	Total        int
	High         int
	Medium       int
	Low          int
	Unclassified int
}

// ComputeStats tallies items. Severities outside the known vocabulary count
// as unclassified.
func ComputeStats(items []incident.Incident) Stats {
	s := Stats{Total: len(items)}
	for _, inc := range items {
		switch domain.Severity(strings.ToLower(strings.TrimSpace(inc.AISeverity))) {
		case domain.SeverityHigh:
			s.High++
		case domain.SeverityMedium:
			s.Medium++
		case domain.SeverityLow:
			s.Low++
		default:
			s.Unclassified++
		}
	}
	return s
}

// SessionInfo describes one TUI run for the exit summary.
type SessionInfo struct {
	StartTime    time.Time
	InitialStats Stats
	Reported     int
}

// Stats returns counts for the current list.
func (m *App) Stats() Stats { return ComputeStats(m.list.incidents) }

// SessionInfo returns the session start, the stats of the first successful
// load and the number of incidents reported during the run.
func (m *App) SessionInfo() SessionInfo {
	return SessionInfo{
		StartTime:    m.sessionStart,
		InitialStats: m.initialStats,
		Reported:     m.reported,
	}
}
