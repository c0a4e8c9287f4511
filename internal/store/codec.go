package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

// billRecord is the persisted shape of one bill: a JSON object inside
// the array blob. Legacy records carry a day-of-month integer in "due"
// instead of a calendar date in "date".
type billRecord struct {
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`

	Due *int `json:"due,omitempty"`
}

// decodeBills turns a persisted blob into the in-memory collection.
// Absent, malformed, or non-array content yields an empty collection;
// this path never fails. Legacy records are migrated as they decode.
func decodeBills(blob []byte, now time.Time) []model.Bill {
	if len(blob) == 0 {
		return nil
	}

	var records []billRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil
	}

	bills := make([]model.Bill, 0, len(records))
	for _, rec := range records {
		b := model.Bill{
			ID:     uuid.NewString(),
			Name:   rec.Name,
			Date:   normalizeDate(rec.Date),
			Amount: clampAmount(money.FromFloat(rec.Amount)),
			Paid:   rec.Paid,
		}
		if b.Date == "" && rec.Due != nil {
			b.Date = migrateLegacyDue(*rec.Due, now)
			b.Migrated = b.Date != ""
		}
		bills = append(bills, b)
	}
	return bills
}

// encodeBills renders the collection back into the persisted JSON-array
// blob. Only the four durable fields survive; identity and migration
// flags are session state.
func encodeBills(bills []model.Bill) []byte {
	records := make([]billRecord, len(bills))
	for i, b := range bills {
		records[i] = billRecord{
			Name:   b.Name,
			Date:   b.Date,
			Amount: b.Amount.Float64(),
			Paid:   b.Paid,
		}
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return []byte("[]")
	}
	return blob
}

// migrateLegacyDue projects a legacy day-of-month onto the current
// year and month, clamped to day 28 so the result is valid in every
// month. Out-of-range days yield an undated bill. Records that already
// carry a calendar date never reach this path, so migration is a no-op
// the second time around.
func migrateLegacyDue(day int, now time.Time) string {
	if day < 1 || day > 31 {
		return ""
	}
	if day > 28 {
		day = 28
	}
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
}

// normalizeDate returns the canonical form of a date string, or empty
// when it does not parse. Bad persisted or patched dates degrade to
// undated rather than failing.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	d, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return ""
	}
	return d.Format(model.DateLayout)
}

// clampAmount enforces the non-negative amount invariant.
func clampAmount(a money.Amount) money.Amount {
	if a < 0 {
		return 0
	}
	return a
}
