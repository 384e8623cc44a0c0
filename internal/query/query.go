// Package query is the read side of the service: catalog listings and
// availability lookups composed from the catalog store and the availability
// projection. It never mutates inventory.
package query

import (
	"context"
	"log/slog"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type Service struct {
	catalog   domain.CatalogRepository
	inventory domain.InventoryRepository
	cache     domain.AvailabilityCache
	logger    *slog.Logger
}

func NewService(
	catalog domain.CatalogRepository,
	inventory domain.InventoryRepository,
	cache domain.AvailabilityCache,
	logger *slog.Logger) *Service {

	return &Service{
		catalog:   catalog,
		inventory: inventory,
		cache:     cache,
		logger:    logger,
	}
}

func (s *Service) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	return s.catalog.ListMovies(ctx)
}

func (s *Service) ListShows(ctx context.Context, movieID int64) ([]*domain.Show, error) {
	_, err := s.catalog.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return s.catalog.ListShowsForMovie(ctx, movieID)
}

// GetAvailability serves the availability projection, falling back to the
// store on a cache miss. The cache only ever holds committed counters, so a
// stale read can lag in-flight bookings but never violates the capacity
// bounds.
func (s *Service) GetAvailability(ctx context.Context, showID int64) (int, error) {
	if s.cache != nil {
		available, ok, err := s.cache.GetAvailability(ctx, showID)
		if err != nil {
			s.logger.Error("availability cache read failed", "show_id", showID, "error", err)
		} else if ok {
			return available, nil
		}
	}

	available, err := s.inventory.AvailableSeats(ctx, showID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		err = s.cache.SetAvailability(ctx, showID, available)
		if err != nil {
			s.logger.Error("availability cache write failed", "show_id", showID, "error", err)
		}
	}

	return available, nil
}
