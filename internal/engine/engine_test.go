package engine

import (
	"testing"

	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

func cents(v float64) money.Amount {
	return money.FromFloat(v)
}

func TestTotalUnpaidIgnoresPaidBills(t *testing.T) {
	bills := []model.Bill{
		{Name: "rent", Amount: cents(300), Paid: false},
		{Name: "power", Amount: cents(200), Paid: true},
		{Name: "water", Amount: cents(45.50), Paid: false},
	}
	if got, want := TotalUnpaid(bills), cents(345.50); got != want {
		t.Fatalf("TotalUnpaid = %s, want %s", got, want)
	}
	if got := TotalUnpaid(nil); got != 0 {
		t.Fatalf("TotalUnpaid(nil) = %s, want 0.00", got)
	}
}

func TestComputeCoveredScenario(t *testing.T) {
	bills := []model.Bill{
		{Amount: cents(300), Paid: false},
		{Amount: cents(200), Paid: true},
	}
	m := Compute(bills, cents(1000), cents(150))

	if m.TotalUnpaid != cents(300) {
		t.Fatalf("TotalUnpaid = %s, want 300.00", m.TotalUnpaid)
	}
	if m.ProjectedBalance != cents(700) {
		t.Fatalf("ProjectedBalance = %s, want 700.00", m.ProjectedBalance)
	}
	if m.AfterPurchase != cents(550) {
		t.Fatalf("AfterPurchase = %s, want 550.00", m.AfterPurchase)
	}
	if m.Coverage != model.CoverageCovered {
		t.Fatalf("Coverage = %s, want covered", m.Coverage)
	}
	if m.Affordability != model.AffordabilityOK {
		t.Fatalf("Affordability = %s, want ok", m.Affordability)
	}
}

func TestComputeShortfallBlocksEvenZeroPurchase(t *testing.T) {
	bills := []model.Bill{{Amount: cents(300), Paid: false}}
	m := Compute(bills, cents(100), 0)

	if m.ProjectedBalance != cents(-200) {
		t.Fatalf("ProjectedBalance = %s, want -200.00", m.ProjectedBalance)
	}
	if m.Coverage != model.CoverageShortfall {
		t.Fatalf("Coverage = %s, want shortfall", m.Coverage)
	}
	if m.Affordability != model.AffordabilityBlocked {
		t.Fatalf("Affordability = %s, want blocked", m.Affordability)
	}
}

func TestComputeCautionWhenOnlyPurchaseUncovered(t *testing.T) {
	bills := []model.Bill{{Amount: cents(300), Paid: false}}
	m := Compute(bills, cents(400), cents(500))

	if m.Coverage != model.CoverageCovered {
		t.Fatalf("Coverage = %s, want covered", m.Coverage)
	}
	if m.Affordability != model.AffordabilityCaution {
		t.Fatalf("Affordability = %s, want caution", m.Affordability)
	}
}

func TestAfterPurchaseMonotonicity(t *testing.T) {
	bills := []model.Bill{{Amount: cents(120), Paid: false}}
	for _, purchase := range []money.Amount{0, cents(1), cents(99.99), cents(5000)} {
		m := Compute(bills, cents(1000), purchase)
		if m.AfterPurchase > m.ProjectedBalance {
			t.Fatalf("purchase %s: AfterPurchase %s > ProjectedBalance %s",
				purchase, m.AfterPurchase, m.ProjectedBalance)
		}
	}
}

func TestCadenceBuckets(t *testing.T) {
	bills := []model.Bill{
		{Date: "2026-03-01", Amount: cents(100), Paid: false},
		{Date: "2026-03-15", Amount: cents(50), Paid: false},
		{Date: "2026-03-16", Amount: cents(75), Paid: false},
		{Date: "2026-03-28", Amount: cents(25), Paid: false},
		{Date: "2026-03-02", Amount: cents(999), Paid: true}, // paid, excluded
		{Date: "", Amount: cents(40), Paid: false},           // undated, excluded
	}

	split := Cadence(bills)
	if split.Early != cents(150) {
		t.Fatalf("Early = %s, want 150.00", split.Early)
	}
	if split.Late != cents(100) {
		t.Fatalf("Late = %s, want 100.00", split.Late)
	}

	// Buckets sum to the unpaid total restricted to dated bills.
	var datedUnpaid money.Amount
	for _, b := range bills {
		if !b.Paid && b.Dated() {
			datedUnpaid += b.Amount
		}
	}
	if split.Early+split.Late != datedUnpaid {
		t.Fatalf("Early+Late = %s, want %s", split.Early+split.Late, datedUnpaid)
	}
}

func TestSplitIncome(t *testing.T) {
	s := SplitIncome(cents(4000))
	if s.Needs != cents(2000) || s.Wants != cents(1200) || s.Savings != cents(800) {
		t.Fatalf("SplitIncome(4000) = %s/%s/%s, want 2000.00/1200.00/800.00",
			s.Needs, s.Wants, s.Savings)
	}
}

func TestSplitIncomeSumsExactly(t *testing.T) {
	for _, income := range []money.Amount{0, 1, 99, cents(0.03), cents(123.45), cents(4000)} {
		s := SplitIncome(income)
		if s.Needs+s.Wants+s.Savings != income {
			t.Fatalf("split of %s sums to %s", income, s.Needs+s.Wants+s.Savings)
		}
	}
}
