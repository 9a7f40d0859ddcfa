// Package app wires the stock performance pipeline together and manages its
// lifecycle: obtain the input path, load and validate records, compute and
// rank returns, aggregate by sector, print the report, and export the result.
//
// The input path comes from a pluggable PathProvider so the pipeline can be
// driven interactively from a terminal or non-interactively from tests and
// flags.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"stockcli/internal/config"
	"stockcli/internal/dataprocessing"
	"stockcli/internal/exporter"
	"stockcli/internal/infrastructure"
	"stockcli/internal/reporter"
)

// ErrNoData signals that the input yielded zero valid records. It is a
// controlled early exit, not a failure: the original business rule treats
// "nothing to do" as an expected end state, and main exits 0 on it.
var ErrNoData = errors.New("no valid records in input")

// PathProvider supplies the input file path for one run.
type PathProvider func(ctx context.Context) (string, error)

// StaticPathProvider returns a provider that always yields the given path.
func StaticPathProvider(path string) PathProvider {
	return func(context.Context) (string, error) {
		return path, nil
	}
}

// PromptPathProvider returns a provider that prompts on out and reads one
// line from in, trimmed of surrounding whitespace.
func PromptPathProvider(in io.Reader, out io.Writer) PathProvider {
	return func(context.Context) (string, error) {
		fmt.Fprint(out, "Enter CSV filename: ")
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input path: %w", err)
			}
			return "", fmt.Errorf("no input path provided")
		}
		return strings.TrimSpace(scanner.Text()), nil
	}
}

// App runs the full pipeline once.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	provider PathProvider
	loader   *dataprocessing.Loader
	exporter *exporter.ReportExporter
}

// New wires an App from its dependencies. out receives the console report
// and user-facing messages; diagnostics go through the logger.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger, provider PathProvider, out io.Writer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		provider: provider,
		loader:   dataprocessing.NewLoader(infrastructure.WithComponent(logger, "loader")),
		exporter: exporter.NewReportExporter(cfg.Report, paths, infrastructure.WithComponent(logger, "exporter")),
	}
}

// Run executes the pipeline. It returns ErrNoData when the input held no
// valid records; any other error means the run could not start at all.
// Export failures are logged and swallowed so they never disturb the
// already-printed report.
func (a *App) Run(ctx context.Context) error {
	ctx = infrastructure.EnsureTraceID(ctx)

	path, err := a.provider(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain input path: %w", err)
	}

	records := a.loader.Load(ctx, path)
	if len(records) == 0 {
		a.logger.WarnContext(ctx, "no valid data found",
			slog.String("path", path))
		fmt.Fprintln(a.out, "No valid data found. Exiting program.")
		return ErrNoData
	}
	a.logger.InfoContext(ctx, "records loaded",
		slog.String("path", path),
		slog.Int("count", len(records)))

	ranked := dataprocessing.RankByReturn(dataprocessing.ComputeReturns(records))
	agg := dataprocessing.AggregateBySector(ranked)

	reporter.New(a.out, a.cfg.Report.TopN).Write(ranked, agg)

	if exported, err := a.exporter.Export(ctx, ranked); err == nil {
		fmt.Fprintf(a.out, "\nData saved to %s\n", exported)
	}

	return nil
}
