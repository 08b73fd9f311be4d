package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"measure/internal/config"
	"measure/internal/telemetry"
	"measure/pkg/bench"
	"measure/pkg/block"
	"measure/pkg/render"
	"measure/pkg/report"
)

var errSuitesFailed = errors.New("one or more suites failed")

// NewRunCmd returns the command executing suites.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run benchmark suites and print their reports",
		Long: `Run executes the named suites, or all of them, one after the other and
prints one report per suite. A failing suite is reported and the others
still run.`,
		RunE: runSuites,
	}

	defaults := block.DefaultBounds()
	flags := cmd.Flags()
	flags.StringP("format", "f", "text", "Report format: text, markdown or yaml")
	flags.String("color", "auto", "Color the report: auto, always or never")
	flags.String("metrics-file", "", "Write prometheus metrics of the run to this file")
	flags.Bool("trace", false, "Export opentelemetry spans of the run to stderr")
	flags.Int("min-iterations", defaults.MinIterations, "Minimum number of iterations per case")
	flags.Int("max-iterations", defaults.MaxIterations, "Maximum number of iterations per case")
	flags.Duration("min-duration", defaults.MinDuration, "Minimum time spent per case")
	flags.Duration("max-duration", defaults.MaxDuration, "Maximum time spent per case, 0 for no limit")

	bindFlags(flags, map[string]string{
		config.KeyFormat:        "format",
		config.KeyColor:         "color",
		config.KeyMetricsFile:   "metrics-file",
		config.KeyTrace:         "trace",
		config.KeyIterationsMin: "min-iterations",
		config.KeyIterationsMax: "max-iterations",
		config.KeyDurationMin:   "min-duration",
		config.KeyDurationMax:   "max-duration",
	})

	return cmd
}

func runSuites(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	runID := uuid.NewString()

	closeLog, err := telemetry.InitLogger(settings.Verbose, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.Default().With("run_id", runID)

	r, err := newRegistry(settings)
	if err != nil {
		return err
	}
	suites, err := selectSuites(r, args)
	if err != nil {
		return err
	}

	reporters := []report.Reporter{
		report.Console(cmd.ErrOrStderr()),
		telemetry.NewLogReporter(logger),
	}

	var metrics *telemetry.Metrics
	if settings.MetricsFile != "" {
		metrics = telemetry.NewMetrics()
		reporters = append(reporters, metrics)
	}

	if settings.Trace {
		tracer, err := telemetry.NewTracer(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracer.Shutdown(ctx); err != nil {
				logger.Error("Failed to shut down tracer", "error", err)
			}
		}()
		reporters = append(reporters, tracer)
	}

	renderer, err := rendererFor(cmd, settings, runID)
	if err != nil {
		return err
	}

	logger.Info("Running suites", "count", len(suites), "format", settings.Format)
	ctx := report.NewContext(cmd.Context(), report.Multi(reporters...))
	runErr := bench.Main(ctx, cmd.OutOrStdout(), bench.WithRenderer(suites, renderer))

	if metrics != nil {
		if err := metrics.WriteTextfile(settings.MetricsFile); err != nil {
			return err
		}
	}

	if runErr != nil {
		logger.Error("Run finished with failures", "error", runErr)
		return errSuitesFailed
	}
	return nil
}

// bindFlags binds each configuration key to the flag of flags named after it.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

// rendererFor picks the renderer matching the configured format.
func rendererFor(cmd *cobra.Command, settings config.Settings, runID string) (bench.Renderer, error) {
	style := render.StyleFor(render.ColorMode(settings.Color), cmd.OutOrStdout())
	switch settings.Format {
	case "text":
		return render.Text(render.WithStyle(style)), nil
	case "markdown":
		if style != nil {
			return render.Pretty(render.Markdown()), nil
		}
		return render.Markdown(), nil
	case "yaml":
		return render.YAML(runID), nil
	default:
		return nil, fmt.Errorf("unknown format %q", settings.Format)
	}
}
