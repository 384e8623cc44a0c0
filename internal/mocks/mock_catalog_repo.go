package mocks

import (
	"context"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

type MockCatalogRepo struct {
	domain.CatalogRepository
	CreateMovieFunc       func(ctx context.Context, title string) (*domain.Movie, error)
	GetMovieFunc          func(ctx context.Context, id int64) (*domain.Movie, error)
	ListMoviesFunc        func(ctx context.Context) ([]*domain.Movie, error)
	CreateShowFunc        func(ctx context.Context, movieID int64, timing string, capacity int) (*domain.Show, error)
	GetShowFunc           func(ctx context.Context, id int64) (*domain.Show, error)
	ListShowsForMovieFunc func(ctx context.Context, movieID int64) ([]*domain.Show, error)
}

func (m *MockCatalogRepo) CreateMovie(ctx context.Context, title string) (*domain.Movie, error) {
	return m.CreateMovieFunc(ctx, title)
}

func (m *MockCatalogRepo) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetMovieFunc(ctx, id)
}

func (m *MockCatalogRepo) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	return m.ListMoviesFunc(ctx)
}

func (m *MockCatalogRepo) CreateShow(ctx context.Context, movieID int64, timing string, capacity int) (*domain.Show, error) {
	return m.CreateShowFunc(ctx, movieID, timing, capacity)
}

func (m *MockCatalogRepo) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	return m.GetShowFunc(ctx, id)
}

func (m *MockCatalogRepo) ListShowsForMovie(ctx context.Context, movieID int64) ([]*domain.Show, error) {
	return m.ListShowsForMovieFunc(ctx, movieID)
}
