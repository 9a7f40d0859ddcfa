// Package dataprocessing implements the stock performance pipeline from raw
// tabular input to aggregated results.
//
// The package is organized into three main components:
//
// 1. Loader: reads CSV or Excel price reports and yields validated records
// 2. Return calculator and ranker: compute and order percentage returns
// 3. Sector aggregator: folds records into per-sector summaries
//
// # Usage
//
//	loader := dataprocessing.NewLoader(logger)
//	records := loader.Load(ctx, "prices.csv")
//	ranked := dataprocessing.RankByReturn(dataprocessing.ComputeReturns(records))
//	agg := dataprocessing.AggregateBySector(ranked)
//
// # Error Handling
//
// The Loader never fails past its boundary: unreadable sources and malformed
// rows are logged as diagnostics and excluded, so callers always receive a
// possibly-empty slice. Rows whose prices parse but are not strictly positive
// are dropped silently; that is a business rule, not an error.
package dataprocessing
