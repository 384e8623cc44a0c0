package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

// InMemoryInventory is a test double for the inventory repository and ledger
// reader. It mirrors the store's transaction semantics: each show has its own
// lock, and writes staged inside WithShowLock apply only when the callback
// returns nil.
type InMemoryInventory struct {
	mu      sync.Mutex
	locks   map[int64]*sync.Mutex
	shows   map[int64]*domain.Show
	events  map[int64][]*domain.BookingEvent
	nextSeq int64
}

func NewInMemoryInventory(shows ...*domain.Show) *InMemoryInventory {
	inv := &InMemoryInventory{
		locks:  make(map[int64]*sync.Mutex),
		shows:  make(map[int64]*domain.Show),
		events: make(map[int64][]*domain.BookingEvent),
	}

	for _, show := range shows {
		copied := *show
		inv.shows[show.ID] = &copied
		inv.locks[show.ID] = &sync.Mutex{}
	}

	return inv
}

func (s *InMemoryInventory) WithShowLock(
	ctx context.Context,
	showID int64,
	fn func(unit domain.InventoryUnit, show *domain.Show) error) error {

	s.mu.Lock()
	show, ok := s.shows[showID]
	if !ok {
		s.mu.Unlock()
		return domain.ErrShowNotFound
	}
	lock := s.locks[showID]
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	snapshot := *show
	unit := &memUnit{store: s, showID: showID}

	err := fn(unit, &snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if unit.stagedAvailable != nil {
		s.shows[showID].Available = *unit.stagedAvailable
	}
	s.events[showID] = append(s.events[showID], unit.stagedEvents...)

	return nil
}

func (s *InMemoryInventory) AvailableSeats(ctx context.Context, showID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[showID]
	if !ok {
		return 0, domain.ErrShowNotFound
	}

	return show.Available, nil
}

func (s *InMemoryInventory) ListEvents(ctx context.Context, showID int64) ([]*domain.BookingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]*domain.BookingEvent, len(s.events[showID]))
	copy(events, s.events[showID])

	return events, nil
}

// Corrupt overwrites the cached counter behind the ledger's back. Tests use
// it to provoke drift.
func (s *InMemoryInventory) Corrupt(showID int64, available int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shows[showID].Available = available
}

type memUnit struct {
	store           *InMemoryInventory
	showID          int64
	stagedAvailable *int
	stagedEvents    []*domain.BookingEvent
}

func (u *memUnit) UpdateAvailable(ctx context.Context, showID int64, available int) error {
	u.stagedAvailable = &available
	return nil
}

func (u *memUnit) AppendEvent(ctx context.Context, event *domain.BookingEvent) error {
	u.store.mu.Lock()
	u.store.nextSeq++
	event.Seq = u.store.nextSeq
	u.store.mu.Unlock()

	event.CreatedAt = time.Now()
	u.stagedEvents = append(u.stagedEvents, event)

	return nil
}

func (u *memUnit) ReplayAvailable(ctx context.Context, showID int64) (int, int, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	show, ok := u.store.shows[showID]
	if !ok {
		return 0, 0, domain.ErrShowNotFound
	}

	available := show.Capacity
	events := u.store.events[showID]

	for _, event := range events {
		available += event.Delta
	}

	for _, event := range u.stagedEvents {
		available += event.Delta
	}

	return available, len(events) + len(u.stagedEvents), nil
}
