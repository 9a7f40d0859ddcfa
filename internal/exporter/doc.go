// Package exporter provides CSV export for the stock performance report.
//
// CSVWriter is the core writing primitive: directory creation, optional
// UTF-8 BOM for Excel compatibility, header row, and flush-error checking.
//
// ReportExporter builds on it to persist the ranked record set to a
// timestamped file. The clock is injectable so tests can assert the exact
// output filename.
package exporter
