package units

import (
	"math"
	"strconv"
)

var displayPrefixes = []struct {
	exp    int
	symbol string
}{
	{6, "M"},
	{3, "k"},
	{0, ""},
	{-3, "m"},
	{-6, "u"},
	{-9, "n"},
	{-12, "p"},
}

// Format renders v with an engineering prefix, e.g. 4700 -> "4.7k" and
// 1e-5 -> "10u". Zero renders as "0".
func Format(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	for _, p := range displayPrefixes {
		if abs >= math.Pow10(p.exp) {
			return trim(v/math.Pow10(p.exp)) + p.symbol
		}
	}
	last := displayPrefixes[len(displayPrefixes)-1]
	return trim(v/math.Pow10(last.exp)) + last.symbol
}

func trim(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}
