// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

// FormatMoney renders an amount with a dollar sign, e.g. "$1,234.56".
// Negative values keep the sign outside: "-$200.00".
func FormatMoney(a money.Amount) string {
	if a < 0 {
		return "-$" + (-a).Format()
	}
	return "$" + a.Format()
}

// FormatDate renders a canonical due date for display, "—" when undated.
func FormatDate(date string) string {
	if date == "" {
		return "—"
	}
	return date
}

// FormatPaid renders a paid flag as a checkbox.
func FormatPaid(paid bool) string {
	if paid {
		return "[x]"
	}
	return "[ ]"
}

// CoverageLabel returns the display word for a coverage status.
func CoverageLabel(s model.CoverageStatus) string {
	if s == model.CoverageCovered {
		return "Covered"
	}
	return "Shortfall"
}

// AffordabilityLabel returns the display word for an affordability status.
func AffordabilityLabel(s model.AffordabilityStatus) string {
	switch s {
	case model.AffordabilityOK:
		return "OK"
	case model.AffordabilityCaution:
		return "Caution"
	default:
		return "Blocked"
	}
}
