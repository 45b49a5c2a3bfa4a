package docgen

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with thousands separators and exactly
// two fractional digits, e.g. 1234.5 -> "1,234.50". It never fails.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatOptionalAmount treats an absent amount as zero.
func FormatOptionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return "0.00"
	}
	return FormatAmount(*d)
}
