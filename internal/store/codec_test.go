package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/theirongolddev/billtab/internal/money"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestDecodeCurrentSchema(t *testing.T) {
	blob := []byte(`[{"name":"Rent","date":"2026-09-01","amount":1250.5,"paid":false},
		{"name":"Gym","date":"","amount":35,"paid":true}]`)

	bills := decodeBills(blob, mustTime(t, "2026-08-29"))
	if len(bills) != 2 {
		t.Fatalf("decoded %d bills, want 2", len(bills))
	}
	if bills[0].Name != "Rent" || bills[0].Date != "2026-09-01" || bills[0].Amount != money.FromFloat(1250.50) {
		t.Fatalf("first bill = %+v", bills[0])
	}
	if !bills[1].Paid || bills[1].Dated() {
		t.Fatalf("second bill = %+v", bills[1])
	}
	if bills[0].ID == "" || bills[0].ID == bills[1].ID {
		t.Fatal("bills did not receive distinct ids")
	}
	if bills[0].Migrated || bills[1].Migrated {
		t.Fatal("current-schema records flagged as migrated")
	}
}

func TestDecodeLegacyDueField(t *testing.T) {
	now := mustTime(t, "2026-02-10")
	blob := []byte(`[{"name":"Power","due":5,"amount":80,"paid":false},
		{"name":"Rent","due":31,"amount":1200,"paid":false},
		{"name":"Mystery","due":99,"amount":10,"paid":false}]`)

	bills := decodeBills(blob, now)

	if bills[0].Date != "2026-02-05" {
		t.Fatalf("due=5 migrated to %q, want 2026-02-05", bills[0].Date)
	}
	// Clamped to 28 so the date is valid in February too.
	if bills[1].Date != "2026-02-28" {
		t.Fatalf("due=31 migrated to %q, want 2026-02-28", bills[1].Date)
	}
	if bills[2].Date != "" || bills[2].Migrated {
		t.Fatalf("out-of-range due migrated to %+v, want undated", bills[2])
	}
	if !bills[0].Migrated || !bills[1].Migrated {
		t.Fatal("migrated records not flagged")
	}
}

func TestMigrationIdempotence(t *testing.T) {
	now := mustTime(t, "2026-02-10")
	blob := []byte(`[{"name":"Power","due":5,"amount":80,"paid":false}]`)

	once := decodeBills(blob, now)
	twice := decodeBills(encodeBills(once), now)

	if once[0].Date != twice[0].Date {
		t.Fatalf("second migration changed the date: %q -> %q", once[0].Date, twice[0].Date)
	}
	if twice[0].Migrated {
		t.Fatal("already-migrated record flagged again after round trip")
	}
}

func TestDecodeNegativeAmountClamps(t *testing.T) {
	blob := []byte(`[{"name":"odd","date":"","amount":-12.5,"paid":false}]`)
	bills := decodeBills(blob, time.Now())
	if bills[0].Amount != 0 {
		t.Fatalf("negative persisted amount = %s, want clamped 0.00", bills[0].Amount)
	}
}

func TestEncodeShape(t *testing.T) {
	bills := decodeBills([]byte(`[{"name":"Rent","date":"2026-09-01","amount":1250,"paid":true}]`), time.Now())
	blob := encodeBills(bills)

	var records []map[string]any
	if err := json.Unmarshal(blob, &records); err != nil {
		t.Fatalf("encoded blob is not a JSON array: %v", err)
	}
	rec := records[0]
	for _, field := range []string{"name", "date", "amount", "paid"} {
		if _, ok := rec[field]; !ok {
			t.Fatalf("encoded record missing %q: %v", field, rec)
		}
	}
	if _, ok := rec["due"]; ok {
		t.Fatal("legacy due field leaked into encoded record")
	}
	if rec["amount"].(float64) != 1250 {
		t.Fatalf("amount encoded as %v, want 1250", rec["amount"])
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct{ in, out string }{
		{"", ""},
		{"2026-08-29", "2026-08-29"},
		{"08/29/2026", ""},
		{"2026-13-40", ""},
		{"soon", ""},
	}
	for _, tc := range cases {
		if got := normalizeDate(tc.in); got != tc.out {
			t.Fatalf("normalizeDate(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
