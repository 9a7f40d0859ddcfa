package dataprocessing

import (
	"stockcli/pkg/contracts/domain"
)

// AggregateBySector folds every record into its sector's summary and
// finalizes the per-sector average return, rounded to 2 decimal places.
// Sector keys are matched by exact string equality; the aggregation keeps
// sectors in first-seen order, so folding the ranked record slice gives a
// deterministic iteration order downstream.
func AggregateBySector(records []domain.StockRecord) *domain.SectorAggregation {
	agg := domain.NewSectorAggregation()
	for _, r := range records {
		s := agg.Entry(r.Sector)
		s.Count++
		s.TotalReturn += r.Return
	}
	for _, s := range agg.Summaries() {
		s.AvgReturn = round2(s.TotalReturn / float64(s.Count))
	}
	return agg
}
