// Package engine implements the seat inventory engine. It is the only
// component that mutates a show's available counter, and it does so inside
// the per-show transactional unit provided by the inventory repository: the
// counter update and the ledger append commit together or not at all.
package engine

import (
	"context"
	"log/slog"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type Engine struct {
	inventory domain.InventoryRepository
	cache     domain.AvailabilityCache
	logger    *slog.Logger
}

func New(inventory domain.InventoryRepository, cache domain.AvailabilityCache, logger *slog.Logger) *Engine {
	return &Engine{
		inventory: inventory,
		cache:     cache,
		logger:    logger,
	}
}

// Book allocates seats on a show. The check against the available counter and
// the write that consumes it happen under the show's row lock, so two
// concurrent bookings can never both observe sufficient seats. There is no
// partial fill: the request succeeds for the full count or fails with
// InsufficientSeatsError carrying the actual availability.
func (e *Engine) Book(ctx context.Context, showID int64, seats int) (domain.BookingResult, error) {
	if seats <= 0 {
		return domain.BookingResult{}, domain.ErrInvalidSeatCount
	}

	var result domain.BookingResult

	err := e.inventory.WithShowLock(ctx, showID, func(unit domain.InventoryUnit, show *domain.Show) error {
		if show.Available < seats {
			return domain.InsufficientSeatsError{Available: show.Available}
		}

		event := domain.NewBookingEvent(showID, -seats)

		err := unit.UpdateAvailable(ctx, showID, show.Available-seats)
		if err != nil {
			return err
		}

		err = unit.AppendEvent(ctx, event)
		if err != nil {
			return err
		}

		result = domain.BookingResult{
			ShowID:    showID,
			EventID:   event.ID.String(),
			Available: show.Available - seats,
		}

		return nil
	})

	if err != nil {
		return domain.BookingResult{}, err
	}

	e.refreshAvailability(ctx, showID, result.Available)

	return result, nil
}

// Cancel releases previously booked seats. A request to release more seats
// than are currently booked fails with OverCancellationError and leaves the
// counter untouched.
func (e *Engine) Cancel(ctx context.Context, showID int64, seats int) (domain.BookingResult, error) {
	if seats <= 0 {
		return domain.BookingResult{}, domain.ErrInvalidSeatCount
	}

	var result domain.BookingResult

	err := e.inventory.WithShowLock(ctx, showID, func(unit domain.InventoryUnit, show *domain.Show) error {
		if show.Booked() < seats {
			return domain.OverCancellationError{Booked: show.Booked()}
		}

		event := domain.NewBookingEvent(showID, seats)

		err := unit.UpdateAvailable(ctx, showID, show.Available+seats)
		if err != nil {
			return err
		}

		err = unit.AppendEvent(ctx, event)
		if err != nil {
			return err
		}

		result = domain.BookingResult{
			ShowID:    showID,
			EventID:   event.ID.String(),
			Available: show.Available + seats,
		}

		return nil
	})

	if err != nil {
		return domain.BookingResult{}, err
	}

	e.refreshAvailability(ctx, showID, result.Available)

	return result, nil
}

// AvailableSeats returns the committed available counter for the show.
func (e *Engine) AvailableSeats(ctx context.Context, showID int64) (int, error) {
	return e.inventory.AvailableSeats(ctx, showID)
}

// Reconcile replays the show's ledger over its capacity and compares the
// derived value with the cached counter. When they diverge the counter is
// rebuilt from the ledger, which is the source of truth. Drift is reported,
// never swallowed: the returned report flags the repair and the caller
// receives a LedgerDriftError describing the violation.
func (e *Engine) Reconcile(ctx context.Context, showID int64) (domain.ReconcileReport, error) {
	var report domain.ReconcileReport

	err := e.inventory.WithShowLock(ctx, showID, func(unit domain.InventoryUnit, show *domain.Show) error {
		derived, events, err := unit.ReplayAvailable(ctx, showID)
		if err != nil {
			return err
		}

		report = domain.ReconcileReport{
			ShowID:    showID,
			Cached:    show.Available,
			Derived:   derived,
			EventSpan: events,
		}

		if derived == show.Available {
			return nil
		}

		err = unit.UpdateAvailable(ctx, showID, derived)
		if err != nil {
			return err
		}

		report.Repaired = true

		return nil
	})

	if err != nil {
		return domain.ReconcileReport{}, err
	}

	if report.Repaired {
		e.refreshAvailability(ctx, showID, report.Derived)

		return report, domain.LedgerDriftError{
			ShowID:  showID,
			Cached:  report.Cached,
			Derived: report.Derived,
		}
	}

	return report, nil
}

// refreshAvailability pushes a committed counter into the availability
// projection. The booking already committed, so cache failures are logged and
// not surfaced; readers fall back to the store.
func (e *Engine) refreshAvailability(ctx context.Context, showID int64, available int) {
	if e.cache == nil {
		return
	}

	err := e.cache.SetAvailability(ctx, showID, available)
	if err != nil {
		e.logger.Error("failed to refresh availability cache", "show_id", showID, "error", err)
	}
}
