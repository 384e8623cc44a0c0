package mocks

import (
	"context"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type MockAvailabilityCache struct {
	domain.AvailabilityCache
	GetAvailabilityFunc func(ctx context.Context, showID int64) (int, bool, error)
	SetAvailabilityFunc func(ctx context.Context, showID int64, available int) error
}

func (m *MockAvailabilityCache) GetAvailability(ctx context.Context, showID int64) (int, bool, error) {
	return m.GetAvailabilityFunc(ctx, showID)
}

func (m *MockAvailabilityCache) SetAvailability(ctx context.Context, showID int64, available int) error {
	return m.SetAvailabilityFunc(ctx, showID, available)
}
