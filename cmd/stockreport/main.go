package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"stockcli/internal/app"
	"stockcli/internal/config"
	"stockcli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input CSV or XLSX file (prompts interactively when omitted)")
	out := flag.String("out", "", "output directory for the exported report (defaults to data/reports)")
	top := flag.Int("top", 0, "number of stocks in the top performers section (defaults to config)")
	flag.Parse()

	// Optional .env for local overrides; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	// Relative log paths land in the logs directory next to the executable
	if cfg.Logging.Output != "console" && !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *top > 0 {
		cfg.Report.TopN = *top
	}
	if *out != "" {
		cfg.Report.OutputDir = *out
	}
	if cfg.Report.OutputDir == "" {
		if err := paths.EnsureDirectories(); err != nil {
			logger.Error("Failed to create required directories", "error", err)
			os.Exit(1)
		}
	}

	provider := app.PromptPathProvider(os.Stdin, os.Stdout)
	if *in != "" {
		provider = app.StaticPathProvider(*in)
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	logger.InfoContext(ctx, "Starting stock performance report",
		slog.String("input", *in),
		slog.String("output_dir", cfg.Report.OutputDir),
		slog.Int("top_n", cfg.Report.TopN))

	if err := app.New(cfg, paths, logger, provider, os.Stdout).Run(ctx); err != nil {
		if errors.Is(err, app.ErrNoData) {
			// Expected end state, not a failure.
			os.Exit(0)
		}
		logger.ErrorContext(ctx, "Pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
