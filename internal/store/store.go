// Package store owns the bill collection and its persistence. The
// collection lives in memory and is authoritative for the session;
// every mutation schedules a debounced write of the full JSON-array
// blob to the backend. Persistence failures are logged and swallowed;
// nothing in this package fails across its public boundary.
package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/billtab/internal/model"
	"github.com/theirongolddev/billtab/internal/money"
)

// blobKey is the single storage key the collection persists under.
const blobKey = "bills.v2"

// DefaultDebounce is the quiet period before a scheduled persist runs.
const DefaultDebounce = 250 * time.Millisecond

// Store owns the ordered bill collection. It is safe for use from the
// event loop plus the debounce timer goroutine; the mutex exists only
// for that pairing, there are no concurrent writers.
type Store struct {
	mu         sync.Mutex
	backend    Backend
	log        *slog.Logger
	debounce   time.Duration
	bills      []model.Bill
	flushTimer *time.Timer
	lastSaved  time.Time
}

// Open loads the persisted collection from backend and returns a store
// over it. A missing, corrupt, or non-array blob degrades to an empty
// collection; legacy records are migrated as they load. Open never
// fails.
func Open(backend Backend, logger *slog.Logger, debounce time.Duration) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	s := &Store{
		backend:  backend,
		log:      logger,
		debounce: debounce,
	}

	blob, err := backend.Get(blobKey)
	if err != nil && err != errNotFound {
		logger.Warn("reading persisted bills failed, starting empty", "err", err)
	}
	s.bills = decodeBills(blob, time.Now())

	return s
}

// Bills returns a copy of the collection in storage order. Display
// ordering is the engine's concern.
func (s *Store) Bills() []model.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Add appends a blank bill (empty name, undated, zero amount, unpaid)
// and returns it for immediate binding.
func (s *Store) Add() model.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := model.Bill{ID: uuid.NewString()}
	s.bills = append(s.bills, b)
	s.schedulePersistLocked()
	return b
}

// Update applies a partial patch to the identified bill. Malformed
// patch values normalize (unparseable amount -> 0, bad date -> undated)
// rather than rejecting the update. Unknown ids are a no-op.
func (s *Store) Update(id string, patch model.BillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		if s.bills[i].ID != id {
			continue
		}
		b := &s.bills[i]

		if patch.Name != nil {
			b.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Date != nil {
			b.Date = normalizeDate(*patch.Date)
			b.Migrated = false
		}
		if patch.RawAmount != nil {
			amt, _ := money.Parse(*patch.RawAmount)
			b.Amount = clampAmount(amt)
		}
		if patch.Paid != nil {
			b.Paid = *patch.Paid
		}

		s.schedulePersistLocked()
		return
	}
}

// Remove deletes the identified bill. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		if s.bills[i].ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			s.schedulePersistLocked()
			return
		}
	}
}

// ClearPaidFlags marks every bill unpaid, rolling the ledger over to
// the next cycle. No bills are deleted.
func (s *Store) ClearPaidFlags() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		s.bills[i].Paid = false
	}
	s.schedulePersistLocked()
}

// ResetAll empties the collection and erases the persisted blob. This
// bypasses the debounce: destructive resets hit storage immediately.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bills = nil
	s.cancelTimerLocked()
	if err := s.backend.Delete(blobKey); err != nil {
		s.log.Warn("erasing persisted bills failed", "err", err)
		return
	}
	s.lastSaved = time.Now()
}

// Flush writes any pending state synchronously. Call before exit.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()
	s.persistLocked()
}

// Close flushes and releases the backend.
func (s *Store) Close() error {
	s.Flush()
	return s.backend.Close()
}

// LastSaved returns the time of the most recent successful persist,
// zero if nothing has been written this session.
func (s *Store) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// schedulePersistLocked arms the debounce timer, or pushes an already
// pending write further out. A newer mutation supersedes the pending
// write; the timer is reset, not reported.
func (s *Store) schedulePersistLocked() {
	if s.flushTimer != nil {
		s.flushTimer.Reset(s.debounce)
		return
	}
	s.flushTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.flushTimer = nil
		s.persistLocked()
	})
}

func (s *Store) cancelTimerLocked() {
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
}

// persistLocked writes the collection, best-effort. On failure the
// in-memory state stays authoritative and the next mutation retries.
func (s *Store) persistLocked() {
	if err := s.backend.Put(blobKey, encodeBills(s.bills)); err != nil {
		s.log.Warn("persisting bills failed", "err", err)
		return
	}
	s.lastSaved = time.Now()
}
