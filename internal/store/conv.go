package store

import (
	"math"
	"strconv"
	"strings"
)

// Conversions follow the C library's strtoll/strtoull/strtod prefix rules:
// leading whitespace and a sign are accepted, digits are read up to the first
// character that is not one, overflow saturates, and text with no leading
// number converts to 0.

const spaceChars = " \t\n\v\f\r"

func parseInt(s string) int64 {
	neg, digits, base := scanInteger(s)
	u, overflow := digitsValue(digits, base)
	if neg {
		if overflow || u > 1<<63 {
			return math.MinInt64
		}
		return -int64(u)
	}
	if overflow || u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func parseUint(s string) uint64 {
	neg, digits, base := scanInteger(s)
	u, overflow := digitsValue(digits, base)
	if overflow {
		return math.MaxUint64
	}
	if neg {
		return -u
	}
	return u
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || parseUint(s) != 0
}

// scanInteger splits s into sign and digit run. A "0x" prefix at the very
// start of s selects base 16; anything else is decimal. After that prefix a
// second "0x" or "0X" is skipped, so "0x0x1f" reads as 31.
func scanInteger(s string) (neg bool, digits string, base int) {
	base = 10
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
		base = 16
	}
	s = strings.TrimLeft(s, spaceChars)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	// Base 16 conversion accepts its own optional prefix, in either case.
	if base == 16 && len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && digitValue(s[2]) < 16 {
		s = s[2:]
	}
	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	return neg, s[:end], base
}

func digitsValue(digits string, base int) (uint64, bool) {
	if digits == "" {
		return 0, false
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		// Only a range error is possible here.
		return math.MaxUint64, true
	}
	return u, false
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}

func parseDouble(s string) float64 {
	s = strings.TrimLeft(s, spaceChars)
	if n := floatPrefix(s); n > 0 {
		// ParseFloat reports overflow as ±Inf, which is also what strtod gives.
		f, _ := strconv.ParseFloat(s[:n], 64)
		return f
	}

	lower := strings.ToLower(s)
	sign := 1.0
	if lower != "" && (lower[0] == '+' || lower[0] == '-') {
		if lower[0] == '-' {
			sign = -1
		}
		lower = lower[1:]
	}
	switch {
	case strings.HasPrefix(lower, "inf"):
		return math.Inf(int(sign))
	case strings.HasPrefix(lower, "nan"):
		return math.NaN()
	}
	return 0
}

// floatPrefix returns the length of the longest decimal floating point
// number at the start of s, or 0 if there is none.
func floatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDecimal(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDecimal(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDecimal(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
