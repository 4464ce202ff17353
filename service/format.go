package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatRM renders an amount as whole ringgit with thousands separators,
// e.g. RM2,532,476. Rounding is half away from zero.
func formatRM(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	if d.IsNegative() {
		return "-RM" + groupThousands(d.Neg().StringFixed(0))
	}
	return "RM" + groupThousands(d.StringFixed(0))
}

// formatPercent renders a fraction as a percentage, 0.045 -> "4.5%".
func formatPercent(fraction float64, places int32) string {
	return decimal.NewFromFloat(fraction).Mul(hundred).StringFixed(places) + "%"
}

// ratioPercent renders part/whole as a percentage; a zero whole gives "0.0%".
func ratioPercent(part, whole float64) string {
	if whole == 0 {
		return decimal.Zero.StringFixed(1) + "%"
	}
	return decimal.NewFromFloat(part).Div(decimal.NewFromFloat(whole)).Mul(hundred).StringFixed(1) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
