package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"incidentdesk/internal/config"
	"incidentdesk/internal/debug"
	"incidentdesk/internal/domain"
	"incidentdesk/internal/incident"
)

func newListCmd(stdout io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every incident",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output
			if !cmd.Flags().Changed("output") {
				format = config.GetString(config.KeyListOutput)
			}
			if err := checkListFormat(format); err != nil {
				return err
			}

			api := config.APISettings()
			incidents, err := newClient(api).List(cmd.Context())
			if err != nil {
				debug.Error("list incidents failed", zap.String("base_url", api.BaseURL), zap.Error(err))
				return err
			}
			return writeIncidents(stdout, incidents, format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func newCreateCmd(stdout io.Writer) *cobra.Command {
	var (
		req    incident.CreateRequest
		output string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a new incident",
		Example: `  incidentdesk create --title "Checkout errors" --description "5xx on /pay" --service payments
  incidentdesk create --title Outage --description "DB down" --priority critical -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkSingleFormat(output); err != nil {
				return err
			}
			if strings.TrimSpace(req.Status) != "" {
				status, err := domain.ParseStatus(req.Status)
				if err != nil {
					return err
				}
				req.Status = string(status)
			}
			if strings.TrimSpace(req.Priority) != "" {
				priority, err := domain.ParsePriority(req.Priority)
				if err != nil {
					return err
				}
				req.Priority = string(priority)
			}
			if err := req.Validate(); err != nil {
				return err
			}

			api := config.APISettings()
			created, err := newClient(api).Create(cmd.Context(), req)
			if err != nil {
				debug.Error("create incident failed", zap.String("title", req.Title), zap.Error(err))
				return err
			}
			debug.Logf("created incident %s", created.ID)
			return writeIncident(stdout, created, output)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.Title, "title", "", "Short summary (required)")
	flags.StringVar(&req.Description, "description", "", "What happened (required)")
	flags.StringVar(&req.Service, "service", "", "Affected service")
	flags.StringVar(&req.Status, "status", "", "Initial status ("+strings.Join(domain.Statuses(), ", ")+")")
	flags.StringVar(&req.Priority, "priority", "", "Priority ("+strings.Join(domain.Priorities(), ", ")+")")
	flags.StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")
	return cmd
}

func newHealthCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the incidents API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := config.APISettings()
			h, err := newClient(api).Health(cmd.Context())
			if err != nil {
				debug.Error("health check failed", zap.String("base_url", api.BaseURL), zap.Error(err))
				return err
			}
			line := fmt.Sprintf("%s: %s", api.BaseURL, h.Status)
			if h.Version != "" {
				line += " (version " + h.Version + ")"
			}
			if h.Message != "" {
				line += " - " + h.Message
			}
			_, err = fmt.Fprintln(stdout, line)
			return err
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			printVersion(stdout)
		},
	}
}
