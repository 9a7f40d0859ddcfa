package exporter

import (
	"strconv"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatPrice formats a price the way it was parsed, using the shortest
// representation that round-trips.
func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
