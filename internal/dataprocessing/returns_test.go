package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockcli/pkg/contracts/domain"
)

func TestComputeReturn(t *testing.T) {
	tests := []struct {
		name       string
		priceStart float64
		priceEnd   float64
		expected   float64
	}{
		{
			name:       "positive return",
			priceStart: 100,
			priceEnd:   110,
			expected:   10.0,
		},
		{
			name:       "negative return",
			priceStart: 50,
			priceEnd:   45,
			expected:   -10.0,
		},
		{
			name:       "flat price",
			priceStart: 75.5,
			priceEnd:   75.5,
			expected:   0.0,
		},
		{
			name:       "rounded to two decimals",
			priceStart: 10000,
			priceEnd:   10123.45,
			expected:   1.23,
		},
		{
			name:       "negative rounded to two decimals",
			priceStart: 3,
			priceEnd:   2,
			expected:   -33.33,
		},
		{
			name:       "large gain",
			priceStart: 1,
			priceEnd:   3.5,
			expected:   250.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ComputeReturn(domain.StockRecord{
				Stock:      "AAA",
				PriceStart: tt.priceStart,
				PriceEnd:   tt.priceEnd,
			})
			assert.Equal(t, tt.expected, rec.Return)
		})
	}
}

func TestComputeReturns_PreservesOrderAndInput(t *testing.T) {
	input := []domain.StockRecord{
		{Stock: "AAA", PriceStart: 100, PriceEnd: 110},
		{Stock: "BBB", PriceStart: 50, PriceEnd: 45},
	}

	computed := ComputeReturns(input)

	require.Len(t, computed, 2)
	assert.Equal(t, "AAA", computed[0].Stock)
	assert.Equal(t, 10.0, computed[0].Return)
	assert.Equal(t, "BBB", computed[1].Stock)
	assert.Equal(t, -10.0, computed[1].Return)

	// The input slice is untouched
	assert.Zero(t, input[0].Return)
	assert.Zero(t, input[1].Return)
}

func TestRankByReturn(t *testing.T) {
	input := []domain.StockRecord{
		{Stock: "AAA", Return: 1.5},
		{Stock: "BBB", Return: 12.0},
		{Stock: "CCC", Return: -3.2},
		{Stock: "DDD", Return: 7.7},
	}

	ranked := RankByReturn(input)

	require.Len(t, ranked, len(input))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Return, ranked[i].Return,
			"ranking must be non-increasing")
	}
	assert.ElementsMatch(t, input, ranked, "ranking must be a permutation of the input")
	assert.Equal(t, "BBB", ranked[0].Stock)
	assert.Equal(t, "CCC", ranked[3].Stock)

	// The input slice keeps its original order
	assert.Equal(t, "AAA", input[0].Stock)
}

func TestRankByReturn_StableForEqualReturns(t *testing.T) {
	input := []domain.StockRecord{
		{Stock: "AAA", Return: 5.0},
		{Stock: "BBB", Return: 5.0},
		{Stock: "CCC", Return: 5.0},
	}

	ranked := RankByReturn(input)

	require.Len(t, ranked, 3)
	assert.Equal(t, "AAA", ranked[0].Stock)
	assert.Equal(t, "BBB", ranked[1].Stock)
	assert.Equal(t, "CCC", ranked[2].Stock)
}

func TestRankByReturn_Empty(t *testing.T) {
	assert.Empty(t, RankByReturn(nil))
}
