package mocks

import (
	"context"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type MockLedgerRepo struct {
	domain.LedgerReader
	ListEventsFunc func(ctx context.Context, showID int64) ([]*domain.BookingEvent, error)
}

func (m *MockLedgerRepo) ListEvents(ctx context.Context, showID int64) ([]*domain.BookingEvent, error) {
	return m.ListEventsFunc(ctx, showID)
}
