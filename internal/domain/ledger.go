package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingEvent is an immutable ledger record of a single seat allocation or
// release. A negative delta books |delta| seats; a positive delta releases
// them. Seq is assigned by the store in commit order.
type BookingEvent struct {
	Seq       int64
	ID        uuid.UUID
	ShowID    int64
	Delta     int
	CreatedAt time.Time
}

// NewBookingEvent builds an unsaved event for the given show. The caller is
// responsible for persisting it inside the same transaction as the counter
// update it describes.
func NewBookingEvent(showID int64, delta int) *BookingEvent {
	return &BookingEvent{
		ID:     uuid.New(),
		ShowID: showID,
		Delta:  delta,
	}
}

// LedgerReader exposes the booking-event history of a show for auditing.
type LedgerReader interface {
	ListEvents(ctx context.Context, showID int64) ([]*BookingEvent, error)
}
