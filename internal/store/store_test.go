package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte
	puts  int

	failPut    bool
	failGet    bool
	failDelete bool
}

func newMemBackend() *memBackend {
	return &memBackend{blobs: make(map[string][]byte)}
}

func (m *memBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("backend unavailable")
	}
	blob, ok := m.blobs[key]
	if !ok {
		return nil, errNotFound
	}
	return blob, nil
}

func (m *memBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("quota exceeded")
	}
	m.blobs[key] = value
	m.puts++
	return nil
}

func (m *memBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return errors.New("backend unavailable")
	}
	delete(m.blobs, key)
	return nil
}

func (m *memBackend) Close() error { return nil }

func (m *memBackend) stored(t *testing.T) []byte {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blobs[blobKey]
}

func (m *memBackend) putCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

const testDebounce = 10 * time.Millisecond

func waitForFlush() { time.Sleep(20 * testDebounce) }

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestOpenMissingBlobStartsEmpty(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)
	if got := s.Bills(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d bills", len(got))
	}
}

func TestOpenCorruptBlobStartsEmpty(t *testing.T) {
	for _, blob := range []string{"not json", `{"name":"obj not array"}`, `42`} {
		backend := newMemBackend()
		backend.blobs[blobKey] = []byte(blob)

		s := Open(backend, nil, testDebounce)
		if got := s.Bills(); len(got) != 0 {
			t.Fatalf("blob %q: expected empty collection, got %d bills", blob, len(got))
		}
	}
}

func TestOpenUnreadableBackendStartsEmpty(t *testing.T) {
	backend := newMemBackend()
	backend.failGet = true

	s := Open(backend, nil, testDebounce)
	if got := s.Bills(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d bills", len(got))
	}
}

func TestAddAppendsBlankBill(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)

	b := s.Add()
	if b.ID == "" {
		t.Fatal("Add returned bill without id")
	}
	if b.Name != "" || b.Date != "" || b.Amount != 0 || b.Paid {
		t.Fatalf("Add returned non-blank bill: %+v", b)
	}

	bills := s.Bills()
	if len(bills) != 1 || bills[0].ID != b.ID {
		t.Fatalf("collection = %+v, want single bill %s", bills, b.ID)
	}
}

func TestUpdateNormalizesPatch(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)
	b := s.Add()

	s.Update(b.ID, model.BillPatch{
		Name:      strp("  Rent  "),
		Date:      strp("2026-09-01"),
		RawAmount: strp("$1,250.00"),
		Paid:      boolp(true),
	})

	got := s.Bills()[0]
	if got.Name != "Rent" {
		t.Fatalf("Name = %q, want trimmed \"Rent\"", got.Name)
	}
	if got.Date != "2026-09-01" {
		t.Fatalf("Date = %q, want 2026-09-01", got.Date)
	}
	if got.Amount != money.FromFloat(1250) {
		t.Fatalf("Amount = %s, want 1,250.00", got.Amount)
	}
	if !got.Paid {
		t.Fatal("Paid = false, want true")
	}

	// Garbage values normalize instead of failing.
	s.Update(b.ID, model.BillPatch{
		Date:      strp("next tuesday"),
		RawAmount: strp("lots"),
	})
	got = s.Bills()[0]
	if got.Date != "" {
		t.Fatalf("bad date normalized to %q, want empty", got.Date)
	}
	if got.Amount != 0 {
		t.Fatalf("bad amount normalized to %s, want 0.00", got.Amount)
	}

	// Negative amounts clamp to zero.
	s.Update(b.ID, model.BillPatch{RawAmount: strp("-50")})
	if got := s.Bills()[0]; got.Amount != 0 {
		t.Fatalf("negative amount clamped to %s, want 0.00", got.Amount)
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)
	s.Add()

	before := s.Bills()
	s.Update("no-such-id", model.BillPatch{Name: strp("ghost")})
	after := s.Bills()

	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("collection changed: %+v -> %+v", before, after)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)
	a := s.Add()
	b := s.Add()

	s.Remove(a.ID)
	if bills := s.Bills(); len(bills) != 1 || bills[0].ID != b.ID {
		t.Fatalf("after remove: %+v, want only %s", bills, b.ID)
	}

	// Deleting again (or a never-present id) leaves the collection unchanged.
	s.Remove(a.ID)
	s.Remove("no-such-id")
	if bills := s.Bills(); len(bills) != 1 {
		t.Fatalf("idempotent remove changed collection: %+v", bills)
	}
}

func TestClearPaidFlags(t *testing.T) {
	s := Open(newMemBackend(), nil, testDebounce)
	a := s.Add()
	b := s.Add()
	s.Update(a.ID, model.BillPatch{Paid: boolp(true)})
	s.Update(b.ID, model.BillPatch{Paid: boolp(true)})

	s.ClearPaidFlags()

	for _, bill := range s.Bills() {
		if bill.Paid {
			t.Fatalf("bill %s still paid after ClearPaidFlags", bill.ID)
		}
	}
	if len(s.Bills()) != 2 {
		t.Fatal("ClearPaidFlags deleted bills")
	}
}

func TestDebounceCoalescesWrites(t *testing.T) {
	backend := newMemBackend()
	s := Open(backend, nil, testDebounce)

	b := s.Add()
	s.Update(b.ID, model.BillPatch{Name: strp("a")})
	s.Update(b.ID, model.BillPatch{Name: strp("ab")})
	s.Update(b.ID, model.BillPatch{Name: strp("abc")})

	waitForFlush()

	if n := backend.putCount(); n != 1 {
		t.Fatalf("put count = %d, want 1 coalesced write", n)
	}
	if blob := backend.stored(t); blob == nil {
		t.Fatal("nothing persisted after debounce window")
	}
}

func TestResetAllErasesImmediately(t *testing.T) {
	backend := newMemBackend()
	s := Open(backend, nil, time.Hour) // debounce long enough to never fire
	s.Add()

	s.ResetAll()

	if bills := s.Bills(); len(bills) != 0 {
		t.Fatalf("collection not emptied: %+v", bills)
	}
	// No waiting: the erase is synchronous.
	if blob := backend.stored(t); blob != nil {
		t.Fatalf("blob still present after reset: %s", blob)
	}
	if s.LastSaved().IsZero() {
		t.Fatal("successful erase did not record a save time")
	}
}

func TestResetAllDeleteFailureLeavesSaveStampUnset(t *testing.T) {
	backend := newMemBackend()
	backend.failDelete = true
	s := Open(backend, nil, time.Hour)
	s.Add()

	s.ResetAll()

	if bills := s.Bills(); len(bills) != 0 {
		t.Fatalf("collection not emptied: %+v", bills)
	}
	if !s.LastSaved().IsZero() {
		t.Fatal("LastSaved set even though the erase failed")
	}
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	backend := newMemBackend()
	backend.failPut = true
	s := Open(backend, nil, testDebounce)

	b := s.Add()
	s.Flush()

	if bills := s.Bills(); len(bills) != 1 || bills[0].ID != b.ID {
		t.Fatalf("in-memory state lost after write failure: %+v", bills)
	}

	// Next mutation retries once the backend recovers.
	backend.failPut = false
	s.Update(b.ID, model.BillPatch{Name: strp("rent")})
	waitForFlush()
	if blob := backend.stored(t); blob == nil {
		t.Fatal("recovered backend never received a write")
	}
}

func TestFlushPersistsPendingState(t *testing.T) {
	backend := newMemBackend()
	s := Open(backend, nil, time.Hour)

	s.Add()
	s.Flush()

	if blob := backend.stored(t); blob == nil {
		t.Fatal("Flush did not persist pending state")
	}
}

func TestRoundTripThroughBackend(t *testing.T) {
	backend := newMemBackend()
	s := Open(backend, nil, testDebounce)
	b := s.Add()
	s.Update(b.ID, model.BillPatch{
		Name:      strp("Internet"),
		Date:      strp("2026-08-20"),
		RawAmount: strp("79.99"),
	})
	s.Flush()

	reopened := Open(backend, nil, testDebounce)
	bills := reopened.Bills()
	if len(bills) != 1 {
		t.Fatalf("reloaded %d bills, want 1", len(bills))
	}
	got := bills[0]
	if got.Name != "Internet" || got.Date != "2026-08-20" || got.Amount != money.FromFloat(79.99) || got.Paid {
		t.Fatalf("reloaded bill = %+v", got)
	}
	if got.ID == b.ID {
		t.Fatal("identity leaked into the persisted blob")
	}
}
