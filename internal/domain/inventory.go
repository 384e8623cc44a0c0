package domain

import "context"

// BookingResult reports the outcome of a committed booking or cancellation.
type BookingResult struct {
	ShowID    int64
	EventID   string
	Available int
}

// ReconcileReport describes the outcome of replaying a show's ledger against
// its cached available counter.
type ReconcileReport struct {
	ShowID    int64
	Cached    int
	Derived   int
	Repaired  bool
	EventSpan int
}

// InventoryUnit is the set of mutations valid inside a single locked-show
// transaction. Counter update and event append issued through the same unit
// commit together or not at all.
type InventoryUnit interface {
	UpdateAvailable(ctx context.Context, showID int64, available int) error
	AppendEvent(ctx context.Context, event *BookingEvent) error

	// ReplayAvailable folds every booking event of the show over its
	// capacity and returns the derived available count and the number of
	// events folded.
	ReplayAvailable(ctx context.Context, showID int64) (available int, events int, err error)
}

// InventoryRepository owns the per-show serialization point. WithShowLock
// runs fn with the show's row locked for the duration of one transaction;
// operations on other shows proceed in parallel. It returns ErrShowNotFound
// for unknown shows and ErrShowBusy when the lock is already held.
type InventoryRepository interface {
	WithShowLock(ctx context.Context, showID int64, fn func(unit InventoryUnit, show *Show) error) error
	AvailableSeats(ctx context.Context, showID int64) (int, error)
}

// AvailabilityCache is a derived projection of committed available counters.
// It may lag the store but never holds a value that was not committed.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context, showID int64) (available int, ok bool, err error)
	SetAvailability(ctx context.Context, showID int64, available int) error
}
