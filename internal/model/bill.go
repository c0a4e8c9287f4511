// Package model defines the bill record and the derived-metric bundles
// computed by the engine.
package model

import "github.com/theirongolddev/billtab/internal/money"

// DateLayout is the canonical due-date form. Lexical order on these
// strings matches chronological order, so sorting needs no parsing.
const DateLayout = "2006-01-02"

// Bill is one recurring obligation. ID is a session-lifetime synthetic
// token assigned by the store; it is never persisted. Date is either
// empty (undated) or a DateLayout string. Amount is never negative.
type Bill struct {
	ID     string
	Name   string
	Date   string
	Amount money.Amount
	Paid   bool

	// Migrated marks a record whose due date was reconstructed from a
	// legacy day-of-month field and relocated into the current month.
	// Cleared once the user edits the date; not persisted.
	Migrated bool
}

// Dated reports whether the bill carries a due date.
func (b Bill) Dated() bool {
	return b.Date != ""
}

// DueDay returns the day-of-month of the due date, or 0 for undated
// or malformed dates.
func (b Bill) DueDay() int {
	if len(b.Date) != len(DateLayout) {
		return 0
	}
	day := 0
	for _, r := range b.Date[8:] {
		if r < '0' || r > '9' {
			return 0
		}
		day = day*10 + int(r-'0')
	}
	if day < 1 || day > 31 {
		return 0
	}
	return day
}

// BillPatch is a partial field change applied through Store.Update.
// Nil fields are left untouched. RawAmount carries the user's free-form
// amount text; the store normalizes it through the money parser.
type BillPatch struct {
	Name      *string
	Date      *string
	RawAmount *string
	Paid      *bool
}
