package units

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned (wrapped) for any input that is not a
// recognizable electronics value. Callers treat it as a wrong answer.
var ErrInvalidValue = errors.New("invalid value")

var numeralPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// Suffix maps a lower-case unit suffix to a power of ten.
type Suffix struct {
	Text     string
	Exponent int
}

// prefixes are the SI multipliers recognized in front of a unit letter.
// Input is lower-cased before matching, so "m" is always milli; "meg" is mega.
var prefixes = []Suffix{
	{"p", -12},
	{"n", -9},
	{"u", -6},
	{"µ", -6}, // micro sign
	{"μ", -6}, // greek mu
	{"m", -3},
	{"k", 3},
	{"meg", 6},
}

// unitLetters are base units that contribute a multiplier of one.
var unitLetters = []string{"v", "a", "f", "h", "w", "hz"}

// suffixes is every recognized suffix sorted longest first, so "10uf"
// resolves through "uf" and never through "f".
var suffixes = buildSuffixes()

func buildSuffixes() []Suffix {
	seen := make(map[string]bool)
	var out []Suffix
	add := func(s Suffix) {
		if seen[s.Text] {
			return
		}
		seen[s.Text] = true
		out = append(out, s)
	}
	for _, p := range prefixes {
		add(p)
		for _, u := range unitLetters {
			add(Suffix{Text: p.Text + u, Exponent: p.Exponent})
		}
	}
	for _, u := range unitLetters {
		add(Suffix{Text: u, Exponent: 0})
	}
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := len([]rune(out[i].Text)), len([]rune(out[j].Text))
		if li != lj {
			return li > lj
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// Suffixes returns the suffix table in matching order.
func Suffixes() []Suffix {
	return append([]Suffix(nil), suffixes...)
}

// ohmMarkers are stripped before parsing. "ω" is what both Ω (U+03A9)
// and the ohm sign (U+2126) lower-case to.
var ohmMarkers = []string{"ohms", "ohm", "ω", "Ω"}

func containsOhm(s string) bool {
	for _, m := range ohmMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Clean trims, lower-cases and collapses internal whitespace.
func Clean(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

// Parse converts a free-text value such as "10uF", "4.7k" or "220 Ω"
// into a magnitude in base SI units.
func Parse(input string) (float64, error) {
	s := Clean(input)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidValue)
	}

	if numeralPattern.MatchString(s) {
		return scaled(s, 0, input)
	}

	for _, marker := range ohmMarkers {
		if !strings.Contains(s, marker) {
			continue
		}
		rest, ok := strings.CutSuffix(s, marker)
		rest = strings.TrimSpace(rest)
		if !ok || rest == "" || containsOhm(rest) {
			return 0, fmt.Errorf("%w: ohm unit must follow the magnitude in %q", ErrInvalidValue, input)
		}
		return Parse(rest)
	}

	for _, sfx := range suffixes {
		if !strings.HasSuffix(s, sfx.Text) {
			continue
		}
		coef := strings.TrimSpace(strings.TrimSuffix(s, sfx.Text))
		if !numeralPattern.MatchString(coef) {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, coef)
		}
		return scaled(coef, sfx.Exponent, input)
	}

	return 0, fmt.Errorf("%w: unrecognized unit in %q", ErrInvalidValue, input)
}

// scaled parses coef×10^exp as one decimal literal so the result is the
// correctly rounded value (10u == 1e-5 exactly).
func scaled(coef string, exp int, input string) (float64, error) {
	lit := coef
	if exp != 0 {
		lit = coef + "e" + strconv.Itoa(exp)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, input, err)
	}
	return v, nil
}
