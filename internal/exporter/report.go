package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"stockcli/internal/config"
	apperrors "stockcli/internal/errors"
	"stockcli/pkg/contracts/domain"
)

// exportHeaders is the column layout of the exported report file.
var exportHeaders = []string{"Stock", "Sector", "PriceStart", "PriceEnd", "Return"}

// ReportExporter persists the ranked record set to a timestamped CSV file.
type ReportExporter struct {
	csv       *CSVWriter
	logger    *slog.Logger
	outputDir string
	prefix    string
	bom       bool
	now       func() time.Time
}

// NewReportExporter creates an exporter writing into cfg.OutputDir, falling
// back to the reports directory from paths.
func NewReportExporter(cfg config.ReportConfig, paths *config.Paths, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	dir := cfg.OutputDir
	if dir == "" && paths != nil {
		dir = paths.ReportsDir
	}
	if dir == "" {
		dir = "."
	}
	prefix := cfg.FilenamePrefix
	if prefix == "" {
		prefix = "stock_report"
	}
	return &ReportExporter{
		csv:       NewCSVWriter(logger),
		logger:    logger,
		outputDir: dir,
		prefix:    prefix,
		bom:       cfg.ExcelCompatible,
		now:       time.Now,
	}
}

// Export writes the records to <outputDir>/<prefix>_<YYYYMMDD>_<HHMMSS>.csv
// and returns the written path. The second-resolution timestamp keeps runs
// from colliding. On failure it logs a diagnostic naming the destination and
// returns a storage error; callers are expected to carry on, as the console
// report has already been produced.
func (e *ReportExporter) Export(ctx context.Context, records []domain.StockRecord) (string, error) {
	filename := fmt.Sprintf("%s_%s.csv", e.prefix, e.now().Format("20060102_150405"))
	path := filepath.Join(e.outputDir, filename)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Stock,
			r.Sector,
			formatPrice(r.PriceStart),
			formatPrice(r.PriceEnd),
			formatFloat(r.Return),
		})
	}

	if err := e.csv.WriteCSV(path, WriteOptions{
		Headers:   exportHeaders,
		Records:   rows,
		BOMPrefix: e.bom,
	}); err != nil {
		e.logger.ErrorContext(ctx, "failed to save report file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return "", apperrors.NewStorageError(fmt.Sprintf("cannot save report to %s", path), err)
	}

	e.logger.InfoContext(ctx, "report exported",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return path, nil
}
