package odds

import (
	"fmt"
	"math"
)

// tote fractions keyed by their profit-per-unit value
var commonFractions = []struct {
	value float64
	label string
}{
	{0.5, "1-2"},
	{1.0, "1-1"},
	{1.5, "3-2"},
	{2.0, "2-1"},
	{2.5, "5-2"},
	{3.0, "3-1"},
	{3.5, "7-2"},
	{4.0, "4-1"},
	{4.5, "9-2"},
	{5.0, "5-1"},
	{6.0, "6-1"},
	{8.0, "8-1"},
	{10.0, "10-1"},
}

// FormatFractional renders a decimal price as the nearest tote fraction.
// Whole-number prices print as N-1; prices far from any common fraction
// fall back to one decimal place.
func FormatFractional(decimalOdds float64) string {
	if decimalOdds <= 1.0 || math.IsNaN(decimalOdds) || math.IsInf(decimalOdds, 0) {
		return "1-1"
	}

	profit := decimalOdds - 1.0
	if whole := math.Round(profit); math.Abs(profit-whole) < 1e-9 && whole >= 1 {
		return fmt.Sprintf("%d-1", int(whole))
	}

	closest := commonFractions[0]
	for _, f := range commonFractions[1:] {
		if math.Abs(f.value-profit) < math.Abs(closest.value-profit) {
			closest = f
		}
	}
	if math.Abs(closest.value-profit) < 0.1 {
		return closest.label
	}
	return fmt.Sprintf("%.1f", profit)
}
