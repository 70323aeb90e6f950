package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/formatter"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/runner"
)

func newRunCommand(s Suite) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the specification",
		Long:  `Runs every example selected by the tag filter and exits non-zero when any example or context fails.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return Run(cmd, s, cfg)
		},
	}
	addRunFlags(runCmd)
	return runCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("tags", "t", "", `Tag filter, e.g. "fast,~slow" ('~' excludes)`)
	cmd.Flags().StringP("exclude", "x", "", "Tags to exclude")
	cmd.Flags().Bool("skip-pending", false, "Do not report pending examples")
	cmd.Flags().Bool("fail-fast", false, "Stop after the first failing example")
	cmd.Flags().Bool("trim", false, "Drop contexts and examples that did not run from the report")
	cmd.Flags().StringP("format", "f", "", "Output format: console, json, markdown")
	cmd.Flags().String("metrics-file", "", "Write run metrics in the Prometheus text format to this file")
	cmd.Flags().Bool("table", false, "Print a per-context summary table after the console output")
	cmd.Flags().Bool("banner", false, "Print the banner before running")
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, &ExitError{Code: ExitConfig, Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("tags") {
		v, _ := flags.GetString("tags")
		cfg.Tags = []string{v}
	}
	if flags.Changed("exclude") {
		v, _ := flags.GetString("exclude")
		cfg.ExcludeTags = []string{v}
	}
	if flags.Changed("skip-pending") {
		cfg.SkipPending, _ = flags.GetBool("skip-pending")
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast, _ = flags.GetBool("fail-fast")
	}
	if flags.Changed("trim") {
		cfg.Trim, _ = flags.GetBool("trim")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, &ExitError{Code: ExitConfig, Err: err}
	}
	return cfg, nil
}

// Run executes the suite with cfg, writing results to the command's output.
func Run(cmd *cobra.Command, s Suite, cfg config.Config) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewWithWriter(stderr, level)

	colored := !cfg.NoColor && isTerminal(stdout)
	if banner, _ := cmd.Flags().GetBool("banner"); banner {
		profile := termenv.Ascii
		if colored {
			profile = termenv.EnvColorProfile()
		}
		tui.PrintBanner(stderr, profile)
	}

	opts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithFailFast(cfg.FailFast),
		runner.WithTrim(cfg.Trim),
		runner.WithSignals(true),
	}

	switch cfg.Format {
	case config.FormatJSON:
		opts = append(opts, runner.WithFormatter(formatter.NewJSON(stdout)))
	case config.FormatConsole:
		console := formatter.NewConsole(stdout)
		if cfg.NoColor {
			console = formatter.NewConsole(stdout, formatter.WithColor(false))
		}
		opts = append(opts, runner.WithFormatter(console))
	}

	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, runner.WithMetrics(observability.NewMetrics(reg)))
	}

	root := s.Spec()
	report, err := runner.New(opts...).Run(cmd.Context(), root, s.instance(cfg.Filter()))
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	switch cfg.Format {
	case config.FormatMarkdown:
		if err := writeMarkdown(stdout, report, colored); err != nil {
			return err
		}
	case config.FormatConsole:
		if table, _ := cmd.Flags().GetBool("table"); table {
			fmt.Fprintln(stdout)
			formatter.SummaryTable(stdout, report, colored)
		}
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	if !report.Success() {
		return &ExitError{Code: ExitFailures, Err: failureSummary(report)}
	}
	return nil
}

func writeMarkdown(w io.Writer, report *runner.Report, colored bool) error {
	render, err := tui.NewPlainRenderer()
	if colored {
		render, err = tui.NewRenderer(0)
	}
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}

	out, err := render(tui.ReportMarkdown(report))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func failureSummary(r *runner.Report) error {
	switch {
	case r.Interrupted:
		return fmt.Errorf("run %s interrupted", r.RunID)
	case len(r.ContextFailures) > 0:
		return fmt.Errorf("%d of %d examples failed, %d contexts failed", r.Failed, r.Total, len(r.ContextFailures))
	default:
		return fmt.Errorf("%d of %d examples failed", r.Failed, r.Total)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
