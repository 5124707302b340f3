package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"incidentdesk/internal/config"
	"incidentdesk/internal/debug"
	appErrors "incidentdesk/internal/errors"
	"incidentdesk/internal/incident"
	"incidentdesk/internal/ui"
	"incidentdesk/internal/ui/theme"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.Execute()
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	configPath         string
	baseURL            string
	apiPrefix          string
	timeout            time.Duration
	debug              bool
	outputFormat       string
	autoRefreshSeconds int
}

// newClient is replaced in tests.
var newClient = func(api config.API) incident.Client {
	return incident.NewHTTPClient(
		incident.WithBaseURL(api.BaseURL),
		incident.WithPrefix(api.Prefix),
		incident.WithTimeout(api.Timeout),
		incident.WithUserAgent("incidentdesk/"+Version),
	)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "incidentdesk",
		Short:         "Report and browse incidents from the terminal",
		Long:          "incidentdesk talks to the incidents API. Without a subcommand it opens the interactive list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			if cmd.HasParent() {
				setupCLILog(stderr)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(stdout, stderr)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Project config file (default: nearest .incidentdesk/config.yaml)")
	flags.StringVar(&opts.baseURL, "base-url", "", "Incidents API base URL (default "+config.DefaultBaseURL+")")
	flags.StringVar(&opts.apiPrefix, "api-prefix", "", "Path prefix before /incidents, e.g. /api/v1")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (default 10s)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.outputFormat, "output-format", "", "Detail markdown style (rich, light, plain)")
	root.Flags().IntVar(&opts.autoRefreshSeconds, "auto-refresh-seconds", 0, "Auto-refresh interval in seconds (0 disables)")

	root.AddCommand(
		newListCmd(stdout),
		newCreateCmd(stdout),
		newHealthCmd(stdout),
		newVersionCmd(stdout),
	)
	return root
}

// load initializes config and applies only the flags the user set, so config
// files and the environment keep their values otherwise.
func (o *cliOptions) load(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return appErrors.Newf(appErrors.CodeConfigurationError, err, "load configuration: %v", err)
	}
	if err := config.MergeProjectConfig(o.configPath); err != nil {
		return appErrors.Newf(appErrors.CodeConfigurationError, err, "load configuration: %v", err)
	}

	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		overrides[config.KeyBaseURL] = o.baseURL
	}
	if flags.Changed("api-prefix") {
		overrides[config.KeyAPIPrefix] = o.apiPrefix
	}
	if flags.Changed("timeout") {
		overrides[config.KeyTimeout] = o.timeout
	}
	if flags.Changed("debug") {
		overrides[config.KeyDebug] = o.debug
	}
	if flags.Changed("output-format") {
		overrides[config.KeyOutputFormat] = o.outputFormat
	}
	if flags.Lookup("auto-refresh-seconds") != nil && flags.Changed("auto-refresh-seconds") {
		overrides[config.KeyAutoRefreshSeconds] = max(o.autoRefreshSeconds, 0)
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return appErrors.Newf(appErrors.CodeConfigurationError, err, "apply flags: %v", err)
	}
	return nil
}

// setupCLILog sends warnings (or everything, with --debug) to stderr.
func setupCLILog(stderr io.Writer) {
	level := zapcore.WarnLevel
	if config.GetBool(config.KeyDebug) {
		level = zapcore.DebugLevel
	}
	debug.InitWriter(stderr, level)
}

func runTUI(stdout, stderr io.Writer) error {
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(stderr, "Warning: debug log unavailable: %v\n", err)
	}
	theme.Apply(config.GetString(config.KeyTheme))

	api := config.APISettings()
	appCfg := ui.Config{
		Client:         newClient(api),
		Version:        Version,
		Endpoint:       api.BaseURL + api.Prefix,
		RequestTimeout: api.Timeout,
		AutoRefresh:    config.AutoRefreshInterval(),
		OutputFormat:   config.GetString(config.KeyOutputFormat),
	}

	final, err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	})
	if err != nil {
		return err
	}
	if app, ok := final.(*ui.App); ok && app != nil {
		printExitSummary(stdout, ExitSummary{
			Version:     Version,
			EndStats:    app.Stats(),
			SessionInfo: app.SessionInfo(),
		})
	}
	return nil
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) (tea.Model, error) {
	app, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	return final, nil
}
