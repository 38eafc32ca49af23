package domain

import "strconv"

// FormatCLP renders an integer peso amount with the Chilean "." thousands
// separator and leading "$": 12000 -> "$12.000".
func FormatCLP(amount int64) string {
	return "$" + FormatThousands(amount)
}

// FormatThousands renders an integer with "." thousands separators.
func FormatThousands(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	n := len(digits)
	if n <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	var out []byte
	if negative {
		out = append(out, '-')
	}
	head := n % 3
	if head > 0 {
		out = append(out, digits[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(out) > 0 && out[len(out)-1] != '-' {
			out = append(out, '.')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

// ParseCLP parses a "$12.000"-style amount back into pesos. Used by
// round-trip checks on formatted confirmation messages.
func ParseCLP(s string) (int64, error) {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c == '-' {
			cleaned = append(cleaned, c)
		}
	}
	return strconv.ParseInt(string(cleaned), 10, 64)
}
