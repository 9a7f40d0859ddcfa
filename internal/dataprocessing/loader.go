package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	apperrors "stockcli/internal/errors"
	"stockcli/pkg/contracts/domain"
)

// Required input columns. Extra columns are ignored and column order is free.
const (
	columnStock      = "Stock"
	columnSector     = "Sector"
	columnPriceStart = "PriceStart"
	columnPriceEnd   = "PriceEnd"
)

var requiredColumns = []string{columnStock, columnSector, columnPriceStart, columnPriceEnd}

// Loader reads stock price reports into validated records.
type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewLoader creates a loader that reports diagnostics through the given logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load reads the file at path and returns the valid records in source order.
// It never returns an error: unreadable sources and malformed rows are logged
// and excluded, so the result may be empty. Files with an .xlsx extension are
// read as Excel workbooks, everything else as CSV.
func (l *Loader) Load(ctx context.Context, path string) []domain.StockRecord {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return l.loadExcel(ctx, path)
	}
	return l.loadCSV(ctx, path)
}

// loadCSV reads a header-delimited CSV file.
func (l *Loader) loadCSV(ctx context.Context, path string) []domain.StockRecord {
	f, err := os.Open(path)
	if err != nil {
		l.logger.ErrorContext(ctx, "cannot open input file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows are validated individually

	header, err := reader.Read()
	if err != nil {
		l.logger.ErrorContext(ctx, "input file has no header row",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	idx, err := headerIndex(header)
	if err != nil {
		l.logger.ErrorContext(ctx, "input file is missing required columns",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	var rows [][]string
	rowNum := 1
	for {
		rowNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.WarnContext(ctx, "skipping unparseable row",
				slog.Int("row", rowNum),
				slog.String("error", err.Error()))
			rows = append(rows, nil) // keep row numbering aligned
			continue
		}
		rows = append(rows, row)
	}

	return l.parseRows(ctx, idx, rows, 2)
}

// loadExcel reads the first worksheet whose header row carries the required
// columns.
func (l *Loader) loadExcel(ctx context.Context, path string) []domain.StockRecord {
	f, err := excelize.OpenFile(path)
	if err != nil {
		l.logger.ErrorContext(ctx, "cannot open input workbook",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		idx, err := headerIndex(rows[0])
		if err != nil {
			continue
		}
		l.logger.InfoContext(ctx, "found price data sheet",
			slog.String("path", path),
			slog.String("sheet", sheet))
		return l.parseRows(ctx, idx, rows[1:], 2)
	}

	l.logger.ErrorContext(ctx, "no worksheet with required columns",
		slog.String("path", path),
		slog.Any("required", requiredColumns))
	return nil
}

// parseRows converts raw rows to records, skipping invalid ones with a
// diagnostic. firstRow is the 1-based source row number of rows[0], used in
// diagnostics only. A nil row is a placeholder for one already reported.
func (l *Loader) parseRows(ctx context.Context, idx map[string]int, rows [][]string, firstRow int) []domain.StockRecord {
	var records []domain.StockRecord
	for i, row := range rows {
		if row == nil {
			continue
		}
		rec, err := l.parseRow(idx, row)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeValidation) {
				// Business rule, not an error: no user-facing diagnostic.
				l.logger.DebugContext(ctx, "row rejected by price policy",
					slog.Int("row", firstRow+i))
				continue
			}
			l.logger.WarnContext(ctx, "skipping invalid row",
				slog.Int("row", firstRow+i),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}
	return records
}

// parseRow builds a record from a single data row.
func (l *Loader) parseRow(idx map[string]int, row []string) (domain.StockRecord, error) {
	cell := func(column string) (string, error) {
		pos := idx[column]
		if pos >= len(row) {
			return "", apperrors.NewParsingError(
				fmt.Sprintf("row is missing the %s column", column), nil)
		}
		return strings.TrimSpace(row[pos]), nil
	}

	var rec domain.StockRecord
	var err error
	if rec.Stock, err = cell(columnStock); err != nil {
		return domain.StockRecord{}, err
	}
	if rec.Sector, err = cell(columnSector); err != nil {
		return domain.StockRecord{}, err
	}

	startRaw, err := cell(columnPriceStart)
	if err != nil {
		return domain.StockRecord{}, err
	}
	endRaw, err := cell(columnPriceEnd)
	if err != nil {
		return domain.StockRecord{}, err
	}
	if startRaw == "" || endRaw == "" {
		return domain.StockRecord{}, apperrors.NewParsingError("missing price value", nil)
	}

	if rec.PriceStart, err = strconv.ParseFloat(startRaw, 64); err != nil {
		return domain.StockRecord{}, apperrors.NewParsingError(
			fmt.Sprintf("invalid %s value %q", columnPriceStart, startRaw), err)
	}
	if rec.PriceEnd, err = strconv.ParseFloat(endRaw, 64); err != nil {
		return domain.StockRecord{}, apperrors.NewParsingError(
			fmt.Sprintf("invalid %s value %q", columnPriceEnd, endRaw), err)
	}

	if err := l.validate.Struct(rec); err != nil {
		return domain.StockRecord{}, apperrors.NewAppError(
			apperrors.ErrTypeValidation, "record rejected by validation", err)
	}
	return rec, nil
}

// headerIndex maps required column names to their positions. A UTF-8 BOM on
// the first cell is tolerated so exported files round-trip.
func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := idx[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")), nil)
	}
	return idx, nil
}
