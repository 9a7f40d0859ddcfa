package dataprocessing

import (
	"math"
	"sort"

	"stockcli/pkg/contracts/domain"
)

// ComputeReturn returns a copy of the record with its percentage return set:
// (PriceEnd - PriceStart) / PriceStart * 100, rounded to 2 decimal places.
// PriceStart is strictly positive for any record admitted by the Loader, so
// the division is always defined.
func ComputeReturn(r domain.StockRecord) domain.StockRecord {
	change := (r.PriceEnd - r.PriceStart) / r.PriceStart * 100
	r.Return = round2(change)
	return r
}

// ComputeReturns applies ComputeReturn to every record, preserving order.
func ComputeReturns(records []domain.StockRecord) []domain.StockRecord {
	computed := make([]domain.StockRecord, len(records))
	for i, r := range records {
		computed[i] = ComputeReturn(r)
	}
	return computed
}

// RankByReturn returns a new slice with the records ordered by descending
// return. The sort is stable, so records with equal returns keep their
// relative input order and the ranking is reproducible.
func RankByReturn(records []domain.StockRecord) []domain.StockRecord {
	ranked := make([]domain.StockRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Return > ranked[j].Return
	})
	return ranked
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
