// Package reporter renders the ranked record set and sector aggregation as
// a fixed-width console report.
package reporter

import (
	"fmt"
	"io"
	"strconv"

	"stockcli/pkg/contracts/domain"
)

const sectionRule = "------------------------------------------------------------"

// Reporter writes the human-readable performance report. It presents data
// only; it never transforms it and has no failure path.
type Reporter struct {
	w    io.Writer
	topN int
}

// New creates a reporter writing to w. topN controls the size of the
// top-performers section; non-positive values fall back to 5.
func New(w io.Writer, topN int) *Reporter {
	if topN <= 0 {
		topN = 5
	}
	return &Reporter{w: w, topN: topN}
}

// Write renders the full report: the detail table for every record, the
// top-performers section, and the sector summary with the best sector.
// Records are printed in the order given, which is the ranked order.
func (r *Reporter) Write(records []domain.StockRecord, agg *domain.SectorAggregation) {
	r.writeDetails(records)
	r.writeTopPerformers(records)
	r.writeSectorSummary(agg)
}

func (r *Reporter) writeDetails(records []domain.StockRecord) {
	fmt.Fprintf(r.w, "\nAll Stock Details\n%s\n", sectionRule)
	fmt.Fprintf(r.w, "%-15s%-20s%-10s%-10s%-10s\n", "Stock", "Sector", "Start", "End", "Return(%)")
	for _, rec := range records {
		fmt.Fprintf(r.w, "%-15s%-20s%-10s%-10s%-10s\n",
			rec.Stock, rec.Sector,
			formatPrice(rec.PriceStart), formatPrice(rec.PriceEnd),
			formatReturn(rec.Return))
	}
}

func (r *Reporter) writeTopPerformers(records []domain.StockRecord) {
	n := r.topN
	if len(records) < n {
		n = len(records)
	}
	fmt.Fprintf(r.w, "\nTop %d Stocks by Return\n%s\n", r.topN, sectionRule)
	for _, rec := range records[:n] {
		fmt.Fprintf(r.w, "%-15s%s%%\n", rec.Stock, formatReturn(rec.Return))
	}
}

func (r *Reporter) writeSectorSummary(agg *domain.SectorAggregation) {
	fmt.Fprintf(r.w, "\nSector Summary\n%s\n", sectionRule)
	for _, s := range agg.Summaries() {
		fmt.Fprintf(r.w, "%-20s Avg Return: %s%%   Count: %d\n",
			s.Sector, formatReturn(s.AvgReturn), s.Count)
	}
	if best := agg.Best(); best != nil {
		fmt.Fprintf(r.w, "\nBest Sector: %s (%s%%)\n", best.Sector, formatReturn(best.AvgReturn))
	}
}

// formatPrice echoes a price the way it was parsed, without padding zeros.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatReturn renders a return percentage with exactly 2 decimal places.
func formatReturn(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
