package grocery

import (
	"math"
	"strconv"
	"strings"
)

// Common culinary fractions, compared after rounding to two places.
var commonFractions = []struct {
	value   float64
	display string
}{
	{round2(1.0 / 8), "1/8"},
	{round2(1.0 / 4), "1/4"},
	{round2(1.0 / 3), "1/3"},
	{round2(3.0 / 8), "3/8"},
	{round2(1.0 / 2), "1/2"},
	{round2(5.0 / 8), "5/8"},
	{round2(2.0 / 3), "2/3"},
	{round2(3.0 / 4), "3/4"},
	{round2(7.0 / 8), "7/8"},
}

const (
	maxDenominator    = 99
	fractionTolerance = 0.0001
)

// FormatQuantity renders a quantity for display: integers as-is, everything
// else as a mixed fraction ("2 1/2").
func FormatQuantity(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return DecimalToFraction(n)
}

// DecimalToFraction renders n as "whole num/den", "num/den" or a whole
// number. Values with no fraction of denominator below 100 fall back to two
// decimal places.
func DecimalToFraction(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	whole := math.Floor(n)
	frac := round2(n - whole)
	if frac >= 1 {
		whole++
		frac = 0
	}
	if frac == 0 {
		if whole == 0 {
			return "0"
		}
		return sign + strconv.FormatFloat(whole, 'f', -1, 64)
	}

	fraction, ok := commonFraction(frac)
	if !ok {
		fraction, ok = searchFraction(frac)
	}
	if !ok {
		return sign + strconv.FormatFloat(round2(whole+frac), 'f', -1, 64)
	}
	if whole == 0 {
		return sign + fraction
	}
	return sign + strconv.FormatFloat(whole, 'f', -1, 64) + " " + fraction
}

// FormatMeasure renders a quantity and unit together, e.g. "2 1/2 cup". A
// zero quantity renders as the unit alone.
func FormatMeasure(quantity float64, unit string) string {
	unit = strings.TrimSpace(unit)
	if quantity == 0 || math.IsNaN(quantity) {
		return unit
	}
	return strings.TrimSpace(FormatQuantity(quantity) + " " + unit)
}

func commonFraction(frac float64) (string, bool) {
	for _, f := range commonFractions {
		if math.Abs(frac-f.value) < 1e-9 {
			return f.display, true
		}
	}
	return "", false
}

func searchFraction(frac float64) (string, bool) {
	for den := 1; den <= maxDenominator; den++ {
		num := math.Round(frac * float64(den))
		if num == 0 {
			continue
		}
		if math.Abs(num/float64(den)-frac) < fractionTolerance {
			n, d := int(num), den
			g := gcd(n, d)
			return strconv.Itoa(n/g) + "/" + strconv.Itoa(d/g), true
		}
	}
	return "", false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
