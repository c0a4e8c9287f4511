package model

import "github.com/theirongolddev/billtab/internal/money"

// CoverageStatus classifies whether the balance covers outstanding bills.
type CoverageStatus string

const (
	CoverageCovered   CoverageStatus = "covered"
	CoverageShortfall CoverageStatus = "shortfall"
)

// AffordabilityStatus classifies a prospective purchase. Bill coverage
// dominates: a shortfall reports Blocked regardless of purchase size.
type AffordabilityStatus string

const (
	AffordabilityOK      AffordabilityStatus = "ok"
	AffordabilityCaution AffordabilityStatus = "caution"
	AffordabilityBlocked AffordabilityStatus = "blocked"
)

// CadenceSplit holds unpaid totals grouped by pay period: bills due on
// or before the 15th versus after. Undated bills appear in neither bucket.
type CadenceSplit struct {
	Early money.Amount
	Late  money.Amount
}

// Metrics is the derived-value bundle consumers redraw from.
type Metrics struct {
	TotalUnpaid      money.Amount
	ProjectedBalance money.Amount
	AfterPurchase    money.Amount
	Coverage         CoverageStatus
	Affordability    AffordabilityStatus
	Cadence          CadenceSplit
}

// IncomeSplit is the fixed 50/30/20 allocation of an income figure.
// Needs + Wants + Savings always equals the input income exactly.
type IncomeSplit struct {
	Needs   money.Amount
	Wants   money.Amount
	Savings money.Amount
}
