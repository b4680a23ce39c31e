package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_IntraState(t *testing.T) {
	b, err := Calculate(1000, 18, "Goa", "Goa")
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.IGSTAmount)
	assert.Equal(t, 90.0, b.CGSTAmount)
	assert.Equal(t, 90.0, b.SGSTAmount)
}

func TestCalculate_InterState(t *testing.T) {
	b, err := Calculate(1000, 18, "Goa", "Maharashtra")
	require.NoError(t, err)

	assert.Equal(t, 180.0, b.IGSTAmount)
	assert.Equal(t, 0.0, b.CGSTAmount)
	assert.Equal(t, 0.0, b.SGSTAmount)
}

func TestCalculate_StateNormalization(t *testing.T) {
	b, err := Calculate(500, 12, "Goa", "  goa ")
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.IGSTAmount, "case and whitespace differences are still the same state")
	assert.Equal(t, 30.0, b.CGSTAmount)
	assert.Equal(t, 30.0, b.SGSTAmount)
}

func TestCalculate_EmptyStatesAreIntraState(t *testing.T) {
	b, err := Calculate(200, 5, "", "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.IGSTAmount)
	assert.Equal(t, 5.0, b.CGSTAmount)
	assert.Equal(t, 5.0, b.SGSTAmount)
}

func TestCalculate_ZeroRate(t *testing.T) {
	b, err := Calculate(999.99, 0, "Goa", "Kerala")
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.IGSTAmount)
	assert.Equal(t, 0.0, b.CGSTAmount)
	assert.Equal(t, 0.0, b.SGSTAmount)
}

func TestCalculate_RoundingAppliedOnceAtTheEnd(t *testing.T) {
	// 333.33 * 18% = 59.9994 -> 59.9994/2 = 29.9997 -> 30.00 per half.
	b, err := Calculate(333.33, 18, "Goa", "Goa")
	require.NoError(t, err)

	assert.Equal(t, 30.0, b.CGSTAmount)
	assert.Equal(t, 30.0, b.SGSTAmount)

	// Same amount inter-state keeps the full tax in one bucket.
	b, err = Calculate(333.33, 18, "Goa", "Kerala")
	require.NoError(t, err)
	assert.Equal(t, 60.0, b.IGSTAmount)
}

func TestCalculate_TaxConservation(t *testing.T) {
	cases := []struct {
		lineTotal float64
		rate      float64
	}{
		{1000, 18},
		{250.50, 12},
		{333.33, 18},
		{1, 5},
		{0, 18},
	}

	for _, tc := range cases {
		intra, err := Calculate(tc.lineTotal, tc.rate, "Goa", "Goa")
		require.NoError(t, err)
		inter, err := Calculate(tc.lineTotal, tc.rate, "Goa", "Kerala")
		require.NoError(t, err)

		expected := math.Round(tc.lineTotal*tc.rate/100*100) / 100
		assert.InDelta(t, expected, intra.TotalTax(), 0.011,
			"intra-state split must conserve the total tax for %v @ %v%%", tc.lineTotal, tc.rate)
		assert.InDelta(t, expected, inter.TotalTax(), 0.001,
			"inter-state split must conserve the total tax for %v @ %v%%", tc.lineTotal, tc.rate)
	}
}

func TestCalculate_InvalidInputs(t *testing.T) {
	_, err := Calculate(math.NaN(), 18, "Goa", "Goa")
	assert.Error(t, err)

	_, err = Calculate(1000, math.Inf(1), "Goa", "Goa")
	assert.Error(t, err)

	_, err = Calculate(-10, 18, "Goa", "Goa")
	assert.Error(t, err)

	_, err = Calculate(1000, 101, "Goa", "Goa")
	assert.Error(t, err)

	_, err = Calculate(1000, -1, "Goa", "Goa")
	assert.Error(t, err)
}

func TestTaxAmountRoundsOnceOnTheFullTax(t *testing.T) {
	tax, err := TaxAmount(0.25, 18)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, tax, 0.0001)

	tax, err = TaxAmount(1000, 18)
	require.NoError(t, err)
	assert.InDelta(t, 180.0, tax, 0.0001)
}

func TestTaxAmountRejectsInvalidInputs(t *testing.T) {
	_, err := TaxAmount(-1, 18)
	require.Error(t, err)

	_, err = TaxAmount(100, 101)
	require.Error(t, err)

	_, err = TaxAmount(math.NaN(), 18)
	require.Error(t, err)
}
