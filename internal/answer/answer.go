package answer

import (
	"math"
	"regexp"
	"strings"

	"github.com/abhisek/voltiz/internal/units"
)

// Kind describes how an expected answer is compared.
type Kind string

const (
	KindNumeric Kind = "numeric" // canonical magnitude, tolerance applies
	KindLiteral Kind = "literal" // one of a set of accepted strings
)

// Expected is the correct answer for a question.
type Expected struct {
	Kind     Kind
	Value    float64  // set for KindNumeric
	Accepted []string // set for KindLiteral, stored normalized
}

// Numeric builds an expected canonical value.
func Numeric(v float64) Expected {
	return Expected{Kind: KindNumeric, Value: v}
}

// Literal builds an expected answer accepting any of values.
func Literal(values ...string) Expected {
	accepted := make([]string, 0, len(values))
	for _, v := range values {
		accepted = append(accepted, Normalize(v))
	}
	return Expected{Kind: KindLiteral, Accepted: accepted}
}

var disallowed = regexp.MustCompile(`[^\w\s.\-]`)

// Normalize prepares a free-text answer for literal comparison:
// trim, lower-case, collapse whitespace, then drop anything that is not a
// word character, space, dot or hyphen.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return disallowed.ReplaceAllString(s, "")
}

// Equivalent reports whether the learner's input matches exp.
//
// Literal answers require an exact normalized match and ignore tolerance.
// Numeric answers accept exact equality, or a relative difference of at
// most tolerancePercent. A zero expected value only accepts exact zero.
func Equivalent(input string, exp Expected, tolerancePercent float64) bool {
	if exp.Kind == KindLiteral {
		got := Normalize(input)
		if got == "" {
			return false
		}
		for _, a := range exp.Accepted {
			if got == a {
				return true
			}
		}
		return false
	}

	v, err := units.Parse(input)
	if err != nil {
		return false
	}
	return WithinTolerance(v, exp.Value, tolerancePercent)
}

// WithinTolerance compares two canonical values.
func WithinTolerance(got, want, tolerancePercent float64) bool {
	if got == want {
		return true
	}
	if want == 0 {
		// Relative difference is undefined.
		return false
	}
	if tolerancePercent <= 0 || math.IsNaN(tolerancePercent) {
		return false
	}
	return PercentDiff(got, want) <= tolerancePercent
}

// PercentDiff returns |got-want| as a percentage of |want|. want must be
// non-zero.
func PercentDiff(got, want float64) float64 {
	return math.Abs(got-want) * 100 / math.Abs(want)
}
