package domain

// SectorSummary holds the running aggregation state for one sector.
// TotalReturn accumulates while records are folded in; AvgReturn is
// computed once folding is complete and is read-only afterwards.
type SectorSummary struct {
	Sector      string  `json:"sector" csv:"Sector"`
	Count       int     `json:"count" csv:"Count"`
	TotalReturn float64 `json:"total_return" csv:"TotalReturn"`
	AvgReturn   float64 `json:"avg_return" csv:"AvgReturn"`
}

// SectorAggregation is an insertion-ordered collection of sector summaries.
// Sector keys are compared by exact string equality. Insertion order is
// preserved so that iteration and tie-breaking are deterministic for a
// given input order.
type SectorAggregation struct {
	summaries []*SectorSummary
	index     map[string]*SectorSummary
}

// NewSectorAggregation creates an empty aggregation.
func NewSectorAggregation() *SectorAggregation {
	return &SectorAggregation{
		index: make(map[string]*SectorSummary),
	}
}

// Entry returns the summary for the given sector, creating a zeroed entry
// on first sight of a new sector key.
func (a *SectorAggregation) Entry(sector string) *SectorSummary {
	if s, ok := a.index[sector]; ok {
		return s
	}
	s := &SectorSummary{Sector: sector}
	a.index[sector] = s
	a.summaries = append(a.summaries, s)
	return s
}

// Get looks up the summary for a sector without creating one.
func (a *SectorAggregation) Get(sector string) (*SectorSummary, bool) {
	s, ok := a.index[sector]
	return s, ok
}

// Summaries returns all sector summaries in insertion order.
func (a *SectorAggregation) Summaries() []*SectorSummary {
	return a.summaries
}

// Len returns the number of distinct sectors folded so far.
func (a *SectorAggregation) Len() int {
	return len(a.summaries)
}

// Best returns the sector with the highest average return. When two sectors
// share the maximum average, the one folded in first wins; callers that fold
// records in ranked order therefore get a stable, reproducible winner.
// Returns nil for an empty aggregation.
func (a *SectorAggregation) Best() *SectorSummary {
	var best *SectorSummary
	for _, s := range a.summaries {
		if best == nil || s.AvgReturn > best.AvgReturn {
			best = s
		}
	}
	return best
}
