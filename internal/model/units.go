package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Sixteenths is the working precision for lengths: 1/16 inch.
const Sixteenths = 16

var sixteen = decimal.NewFromInt(Sixteenths)

// SnapToSixteenth rounds a length to the nearest 1/16 inch, halves away from zero.
func SnapToSixteenth(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Mul(sixteen).Round(0).Div(sixteen).Float64()
	return f
}

// FormatLength renders inches as a whole number plus a reduced fraction,
// e.g. 96.1875 -> `96 3/16"`.
func FormatLength(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%g\"", v)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	total := decimal.NewFromFloat(v).Mul(sixteen).Round(0).IntPart()
	whole := total / Sixteenths
	num := total % Sixteenths
	den := int64(Sixteenths)
	for num > 0 && num%2 == 0 {
		num /= 2
		den /= 2
	}

	var s string
	switch {
	case num == 0:
		s = fmt.Sprintf("%d\"", whole)
	case whole == 0:
		s = fmt.Sprintf("%d/%d\"", num, den)
	default:
		s = fmt.Sprintf("%d %d/%d\"", whole, num, den)
	}
	if neg {
		return "-" + s
	}
	return s
}

// ParseLength parses a length in inches. Accepted forms:
//
//	96   96.5   96 3/16   96-3/16   3/4   8'   8' 3 1/2"   8ft 4in
//
// Feet are converted at 12 inches per foot.
func ParseLength(s string) (float64, error) {
	in := strings.TrimSpace(strings.ToLower(s))
	if in == "" {
		return 0, fmt.Errorf("empty length")
	}
	in = strings.NewReplacer("ft", "'", "in", "\"", "”", "\"", "’", "'").Replace(in)

	total := decimal.Zero
	if idx := strings.Index(in, "'"); idx >= 0 {
		feet, err := parseMixed(in[:idx])
		if err != nil {
			return 0, fmt.Errorf("invalid feet in %q: %w", s, err)
		}
		total = feet.Mul(decimal.NewFromInt(12))
		in = in[idx+1:]
	}

	in = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(in), "\""))
	if in != "" {
		inches, err := parseMixed(in)
		if err != nil {
			return 0, fmt.Errorf("invalid length %q: %w", s, err)
		}
		total = total.Add(inches)
	}

	f, _ := total.Float64()
	return f, nil
}

// parseMixed parses "96", "96.5", "3/16", "96 3/16" or "96-3/16".
func parseMixed(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Index(s, "-") > 0 {
		s = strings.Replace(s, "-", " ", 1)
	}
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return parseNumberOrFraction(fields[0])
	case 2:
		whole, err := decimal.NewFromString(fields[0])
		if err != nil {
			return decimal.Zero, err
		}
		frac, err := parseFraction(fields[1])
		if err != nil {
			return decimal.Zero, err
		}
		return whole.Add(frac), nil
	default:
		return decimal.Zero, fmt.Errorf("unexpected %q", s)
	}
}

func parseNumberOrFraction(s string) (decimal.Decimal, error) {
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	return decimal.NewFromString(s)
}

func parseFraction(s string) (decimal.Decimal, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return decimal.Zero, fmt.Errorf("not a fraction: %q", s)
	}
	num, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero, err
	}
	den, err := decimal.NewFromString(parts[1])
	if err != nil {
		return decimal.Zero, err
	}
	if den.IsZero() {
		return decimal.Zero, fmt.Errorf("zero denominator in %q", s)
	}
	return num.Div(den), nil
}
