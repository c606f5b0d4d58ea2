// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Masks shown in place of amounts when private mode is on.
const (
	AmountMask     = "₹ ••••"
	GoalAmountMask = "₹•••"
	ChartMask      = "***"
)

// FormatINR renders an amount in rupees with Indian digit grouping
// (1,23,456) and no fractional digits.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
