package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"incidentdesk/internal/ui"
	"incidentdesk/internal/ui/theme"
)

// ExitSummary is printed after the TUI leaves the alt screen.
type ExitSummary struct {
	Version     string
	EndStats    ui.Stats
	SessionInfo ui.SessionInfo
}

func printExitSummary(w io.Writer, summary ExitSummary) {
	t := theme.Current()
	appStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary())
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted())
	statsStyle := lipgloss.NewStyle().Foreground(t.Text())
	reportedStyle := lipgloss.NewStyle().Foreground(t.Success())

	versionStr := ""
	if summary.Version != "" {
		versionStr = dimStyle.Render(" " + summary.Version)
	}
	duration := time.Duration(0)
	if !summary.SessionInfo.StartTime.IsZero() {
		duration = time.Since(summary.SessionInfo.StartTime)
	}
	sessionStr := dimStyle.Render(fmt.Sprintf(" • %s session", formatDuration(duration)))

	end := summary.EndStats
	var parts []string
	for _, p := range []struct {
		label string
		n     int
	}{
		{"High", end.High},
		{"Medium", end.Medium},
		{"Low", end.Low},
		{"Unclassified", end.Unclassified},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.label))
		}
	}

	statsStr := fmt.Sprintf("%d Incidents", end.Total)
	if delta := end.Total - summary.SessionInfo.InitialStats.Total; delta != 0 {
		statsStr += " " + dimStyle.Render(formatDelta(delta))
	}
	if len(parts) > 0 {
		statsStr += ": " + strings.Join(parts, ", ")
	}

	_, _ = fmt.Fprintln(w, appStyle.Render("incidentdesk")+versionStr+sessionStr)
	_, _ = fmt.Fprintln(w, statsStyle.Render(statsStr))
	if n := summary.SessionInfo.Reported; n > 0 {
		noun := "incidents"
		if n == 1 {
			noun = "incident"
		}
		_, _ = fmt.Fprintln(w, reportedStyle.Render(fmt.Sprintf("Reported %d %s this session", n, noun)))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func formatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("(+%d)", delta)
	}
	return fmt.Sprintf("(%d)", delta)
}
