package domain

// StockRecord represents a single stock's price observation window as read
// from an input report. PriceStart and PriceEnd are validated to be strictly
// positive before a record is admitted into the pipeline. Return is set
// exactly once by the return calculator and never mutated afterwards.
type StockRecord struct {
	Stock      string  `json:"stock" csv:"Stock" validate:"required"`
	Sector     string  `json:"sector" csv:"Sector"`
	PriceStart float64 `json:"price_start" csv:"PriceStart" validate:"required,gt=0"`
	PriceEnd   float64 `json:"price_end" csv:"PriceEnd" validate:"required,gt=0"`
	Return     float64 `json:"return" csv:"Return"`
}
