package locale

import (
	"fmt"
	"strings"

	"compounding-bot/internal/progress"
)

// Status returns the localized status badge line.
func Status(lang string, s progress.Status) string {
	switch s {
	case progress.StatusOnTrack:
		return T(lang, "status_on_track")
	case progress.StatusBelowStoploss:
		return T(lang, "status_below_sl")
	default:
		return T(lang, "status_attention")
	}
}

// FormatMoney renders an amount with the user's currency symbol and
// thousands separators, e.g. "₹1,650.50".
func FormatMoney(currency string, amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(whole, '.')
	intPart, fracPart := whole[:dot], whole[dot:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + currency + b.String() + fracPart
}
