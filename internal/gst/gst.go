// Package gst computes the Indian GST split for an invoice line.
//
// Intra-state supplies (supplier and recipient in the same state) are taxed as
// CGST + SGST, each half of the total tax. Inter-state supplies carry the full
// tax as IGST. Rounding to two decimals happens once, on the final amounts,
// so a multi-item invoice does not accumulate intermediate rounding error.
package gst

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Breakdown is the per-line tax split. Exactly one of IGST or the CGST/SGST
// pair is non-zero (both halves are zero for a zero-rated line).
type Breakdown struct {
	IGSTAmount float64 `json:"igst_amount"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTAmount float64 `json:"sgst_amount"`
}

// TotalTax returns the sum of all three components.
func (b Breakdown) TotalTax() float64 {
	return b.IGSTAmount + b.CGSTAmount + b.SGSTAmount
}

// Calculate splits the GST on lineTotal between IGST and CGST/SGST by
// comparing supplier and recipient states. States are compared after trimming
// whitespace and case-folding; two empty states compare equal and therefore
// produce the intra-state split.
func Calculate(lineTotal, gstRatePercent float64, supplierState, recipientState string) (Breakdown, error) {
	if err := validateLine(lineTotal, gstRatePercent); err != nil {
		return Breakdown{}, err
	}

	totalTax := decimal.NewFromFloat(lineTotal).
		Mul(decimal.NewFromFloat(gstRatePercent)).
		Div(decimal.NewFromInt(100))

	if sameState(supplierState, recipientState) {
		half := totalTax.Div(decimal.NewFromInt(2)).Round(2)
		return Breakdown{
			CGSTAmount: half.InexactFloat64(),
			SGSTAmount: half.InexactFloat64(),
		}, nil
	}

	return Breakdown{
		IGSTAmount: totalTax.Round(2).InexactFloat64(),
	}, nil
}

// TaxAmount is the unsplit GST on a line: lineTotal * ratePercent / 100,
// rounded to two decimals. Invoice amounts are frozen from this value; the
// jurisdictional split in Calculate rounds each half separately and may
// differ from it by a paisa on half-paisa boundaries.
func TaxAmount(lineTotal, gstRatePercent float64) (float64, error) {
	if err := validateLine(lineTotal, gstRatePercent); err != nil {
		return 0, err
	}
	return decimal.NewFromFloat(lineTotal).
		Mul(decimal.NewFromFloat(gstRatePercent)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64(), nil
}

func validateLine(lineTotal, gstRatePercent float64) error {
	if math.IsNaN(lineTotal) || math.IsInf(lineTotal, 0) {
		return fmt.Errorf("invalid line total %v", lineTotal)
	}
	if math.IsNaN(gstRatePercent) || math.IsInf(gstRatePercent, 0) {
		return fmt.Errorf("invalid gst rate %v", gstRatePercent)
	}
	if lineTotal < 0 {
		return fmt.Errorf("line total must not be negative, got %v", lineTotal)
	}
	if gstRatePercent < 0 || gstRatePercent > 100 {
		return fmt.Errorf("gst rate must be between 0 and 100, got %v", gstRatePercent)
	}
	return nil
}

// IntraState reports whether a supply between the two states is intra-state,
// using the same normalization as Calculate.
func IntraState(supplierState, recipientState string) bool {
	return sameState(supplierState, recipientState)
}

// sameState reports whether two state names refer to the same tax
// jurisdiction after normalization. Two unknown (empty) states are treated as
// equal, which yields the CGST/SGST split.
func sameState(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
