package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	appErrors "incidentdesk/internal/errors"
	"incidentdesk/internal/incident"
)

const noIncidentsMessage = "No incidents found."

func checkListFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	}
	return appErrors.Newf(appErrors.CodeInvalidRequest, nil, "unknown output format %q (want table, json or yaml)", format)
}

func checkSingleFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return appErrors.Newf(appErrors.CodeInvalidRequest, nil, "unknown output format %q (want text, json or yaml)", format)
}

func writeIncidents(w io.Writer, incidents []incident.Incident, format string) error {
	if incidents == nil {
		incidents = []incident.Incident{}
	}
	switch format {
	case "json":
		return writeJSON(w, incidents)
	case "yaml":
		return writeYAML(w, incidents)
	}

	if len(incidents) == 0 {
		_, err := fmt.Fprintln(w, noIncidentsMessage)
		return err
	}
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "SERVICE", "STATUS", "SEVERITY", "CATEGORY").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, inc := range incidents {
		t.Row(
			inc.ID.String(),
			inc.Title,
			dashIfBlank(inc.Service),
			dashIfBlank(inc.Status),
			inc.Severity(),
			inc.Category(),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeIncident(w io.Writer, inc incident.Incident, format string) error {
	switch format {
	case "json":
		return writeJSON(w, inc)
	case "yaml":
		return writeYAML(w, inc)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Reported incident %s: %s\n", inc.ID.Display(), inc.Title)
	fmt.Fprintf(&b, "  Severity: %s\n", inc.Severity())
	fmt.Fprintf(&b, "  Category: %s\n", inc.Category())
	if inc.Service != "" {
		fmt.Fprintf(&b, "  Service:  %s\n", inc.Service)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func dashIfBlank(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
