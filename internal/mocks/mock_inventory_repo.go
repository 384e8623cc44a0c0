package mocks

import (
	"context"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type MockInventoryRepo struct {
	domain.InventoryRepository
	WithShowLockFunc   func(ctx context.Context, showID int64, fn func(unit domain.InventoryUnit, show *domain.Show) error) error
	AvailableSeatsFunc func(ctx context.Context, showID int64) (int, error)
}

func (m *MockInventoryRepo) WithShowLock(
	ctx context.Context,
	showID int64,
	fn func(unit domain.InventoryUnit, show *domain.Show) error) error {

	return m.WithShowLockFunc(ctx, showID, fn)
}

func (m *MockInventoryRepo) AvailableSeats(ctx context.Context, showID int64) (int, error) {
	return m.AvailableSeatsFunc(ctx, showID)
}

type MockInventoryUnit struct {
	domain.InventoryUnit
	UpdateAvailableFunc func(ctx context.Context, showID int64, available int) error
	AppendEventFunc     func(ctx context.Context, event *domain.BookingEvent) error
	ReplayAvailableFunc func(ctx context.Context, showID int64) (int, int, error)
}

func (m *MockInventoryUnit) UpdateAvailable(ctx context.Context, showID int64, available int) error {
	return m.UpdateAvailableFunc(ctx, showID, available)
}

func (m *MockInventoryUnit) AppendEvent(ctx context.Context, event *domain.BookingEvent) error {
	return m.AppendEventFunc(ctx, event)
}

func (m *MockInventoryUnit) ReplayAvailable(ctx context.Context, showID int64) (int, int, error) {
	return m.ReplayAvailableFunc(ctx, showID)
}
