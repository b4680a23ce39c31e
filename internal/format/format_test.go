package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_IndianGrouping(t *testing.T) {
	assert.Equal(t, "₹0.00", Currency(0))
	assert.Equal(t, "₹180.00", Currency(180))
	assert.Equal(t, "₹1,000.00", Currency(1000))
	assert.Equal(t, "₹1,234.50", Currency(1234.5))
	assert.Equal(t, "₹12,345.00", Currency(12345))
	assert.Equal(t, "₹1,23,456.78", Currency(123456.78))
	assert.Equal(t, "₹12,34,567.00", Currency(1234567))
	assert.Equal(t, "₹1,00,00,000.00", Currency(10000000))
}

func TestCurrency_Rounding(t *testing.T) {
	assert.Equal(t, "₹99.99", Currency(99.994))
	assert.Equal(t, "₹100.00", Currency(99.995))
}

func TestCurrency_Negative(t *testing.T) {
	assert.Equal(t, "-₹1,23,456.78", Currency(-123456.78))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "25 December 2024", Date("2024-12-25"))
	assert.Equal(t, "5 January 2025", Date("2025-01-05"))
	assert.Equal(t, "", Date(""))
}

func TestDate_RFC3339Input(t *testing.T) {
	assert.Equal(t, "25 December 2024", Date("2024-12-25T00:00:00Z"))
}

func TestAmountInWords_WholeRupees(t *testing.T) {
	got := AmountInWords(500)
	assert.Equal(t, "Rupees Five Hundred Only", got)
	assert.NotContains(t, got, "Paise")
}

func TestAmountInWords_WithPaise(t *testing.T) {
	assert.Equal(t,
		"Rupees One Thousand Two Hundred Thirty-Four and Fifty Paise Only",
		AmountInWords(1234.50))
}

func TestAmountInWords_Zero(t *testing.T) {
	assert.Equal(t, "Rupees Zero Only", AmountInWords(0))
}

func TestAmountInWords_Hyphenation(t *testing.T) {
	assert.Equal(t, "Rupees Twenty-One Only", AmountInWords(21))
	assert.Equal(t, "Rupees Ninety-Nine Only", AmountInWords(99))
	assert.Equal(t, "Rupees Forty Only", AmountInWords(40))
}

func TestAmountInWords_LargeAmounts(t *testing.T) {
	assert.Equal(t, "Rupees Nine Lakh Ninety-Nine Thousand Nine Hundred Ninety-Nine Only",
		AmountInWords(999999))
	assert.Equal(t, "Rupees One Lakh Only", AmountInWords(100000))
	assert.Equal(t, "Rupees Twelve Lakh Thirty-Four Thousand Five Hundred Sixty-Seven Only",
		AmountInWords(1234567))
	assert.Equal(t, "Rupees One Crore Only", AmountInWords(10000000))
}

func TestAmountInWords_PaiseCarry(t *testing.T) {
	// 499.999 rounds to 500.00, not 499 rupees and 100 paise.
	assert.Equal(t, "Rupees Five Hundred Only", AmountInWords(499.999))
}
