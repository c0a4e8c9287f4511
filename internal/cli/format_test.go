package cli

import (
	"testing"

	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in  money.Amount
		out string
	}{
		{money.FromFloat(0), "$0.00"},
		{money.FromFloat(1234.56), "$1,234.56"},
		{money.FromFloat(-200), "-$200.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.out {
			t.Fatalf("FormatMoney(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	if got := CoverageLabel(model.CoverageShortfall); got != "Shortfall" {
		t.Fatalf("CoverageLabel = %q, want Shortfall", got)
	}
	if got := AffordabilityLabel(model.AffordabilityCaution); got != "Caution" {
		t.Fatalf("AffordabilityLabel = %q, want Caution", got)
	}
	if got := FormatDate(""); got != "—" {
		t.Fatalf("FormatDate(\"\") = %q, want em dash", got)
	}
}
