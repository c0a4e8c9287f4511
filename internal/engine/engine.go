// Package engine computes derived metrics from the bill collection and
// the session's scalar inputs. Every function here is pure: total over
// all inputs, deterministic, no I/O, and read-only over the bills it is
// handed. Consumers recompute after each mutation rather than caching.
package engine

import (
	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

const midMonthDay = 15

// TotalUnpaid sums the amounts of all unpaid bills.
func TotalUnpaid(bills []model.Bill) money.Amount {
	var total money.Amount
	for _, b := range bills {
		if !b.Paid {
			total += b.Amount
		}
	}
	return total
}

// Compute derives the full metrics bundle for the given balance and
// prospective purchase amount.
func Compute(bills []model.Bill, balance, purchase money.Amount) model.Metrics {
	totalUnpaid := TotalUnpaid(bills)
	projected := balance - totalUnpaid
	after := projected - purchase

	m := model.Metrics{
		TotalUnpaid:      totalUnpaid,
		ProjectedBalance: projected,
		AfterPurchase:    after,
		Coverage:         model.CoverageCovered,
		Affordability:    model.AffordabilityOK,
		Cadence:          Cadence(bills),
	}

	if projected < 0 {
		m.Coverage = model.CoverageShortfall
	}

	// Bill coverage dominates purchase affordability.
	switch {
	case projected < 0:
		m.Affordability = model.AffordabilityBlocked
	case after < 0:
		m.Affordability = model.AffordabilityCaution
	}

	return m
}

// Cadence partitions unpaid dated bills by due-date day-of-month into
// the early (day <= 15) and late (day > 15) pay-period buckets. Paid
// and undated bills contribute to neither.
func Cadence(bills []model.Bill) model.CadenceSplit {
	var split model.CadenceSplit
	for _, b := range bills {
		if b.Paid {
			continue
		}
		day := b.DueDay()
		if day == 0 {
			continue
		}
		if day <= midMonthDay {
			split.Early += b.Amount
		} else {
			split.Late += b.Amount
		}
	}
	return split
}

// SplitIncome allocates an income figure 50/30/20 into needs, wants,
// and savings. Needs and wants round to the nearest cent; savings takes
// the remainder so the three buckets sum exactly to the income.
func SplitIncome(income money.Amount) model.IncomeSplit {
	needs := money.FromFloat(income.Float64() * 0.50)
	wants := money.FromFloat(income.Float64() * 0.30)
	return model.IncomeSplit{
		Needs:   needs,
		Wants:   wants,
		Savings: income - needs - wants,
	}
}
