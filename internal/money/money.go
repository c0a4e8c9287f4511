// Package money provides total parsing and canonical formatting of
// decimal money values. Amounts are held as integer cents so arithmetic
// and the parse/format round-trip are exact to cent precision.
package money

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a money value in cents.
type Amount int64

// Parse converts free-form user text into an Amount. It strips every
// character except digits, '.' and '-', validates the remainder as a
// decimal, and converts it to cents with half-cent inputs rounding
// away from zero. It never fails: anything that does not parse to a
// finite number yields zero. The second return value reports whether
// the input actually parsed, so callers can distinguish an explicit
// zero from defaulted garbage.
func Parse(raw string) (Amount, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	// Cents come from the decimal text, not the float: 1.005 has no
	// exact float64 form and would round down through FromFloat.
	if cents, ok := centsFromDecimal(cleaned); ok {
		return cents, true
	}
	return FromFloat(v), true
}

// centsFromDecimal converts an already validated decimal string to
// cents, rounding the third fractional digit half away from zero.
// Returns false when the whole part overflows int64 cents; the caller
// falls back to float conversion for such magnitudes.
func centsFromDecimal(s string) (Amount, bool) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")

	var cents int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > (math.MaxInt64-100)/100 {
			return 0, false
		}
		cents = n * 100
	}

	for len(frac) < 3 {
		frac += "0"
	}
	cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if frac[2] >= '5' {
		cents++
	}

	if neg {
		cents = -cents
	}
	return Amount(cents), true
}

// FromFloat converts a float dollar value to cents, rounding half away
// from zero. Non-finite inputs yield zero.
func FromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(math.Round(v * 100))
}

// Float64 returns the dollar value as a float64. Use Amount arithmetic
// for derivations; this exists for JSON encoding and display scaling.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// Format renders the amount with exactly two fractional digits and
// comma thousands separators, e.g. 123456789 cents -> "1,234,567.89".
// Parse(Format(a)) == a for every Amount.
func (a Amount) Format() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	return sign + groupThousands(whole) + "." + pad2(frac)
}

// String implements fmt.Stringer using the canonical Format rendering.
func (a Amount) String() string {
	return a.Format()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// groupThousands adds comma separators to a non-negative integer.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
