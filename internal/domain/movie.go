package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}

type Show struct {
	ID        int64
	MovieID   int64
	Timing    string
	Capacity  int
	Available int
	CreatedAt time.Time
}

// Booked returns the number of seats currently allocated for the show.
func (s *Show) Booked() int {
	return s.Capacity - s.Available
}

// CatalogRepository stores movies and their shows. It never mutates a show's
// available counter after creation; that is the engine's job.
type CatalogRepository interface {
	CreateMovie(ctx context.Context, title string) (*Movie, error)
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	ListMovies(ctx context.Context) ([]*Movie, error)
	CreateShow(ctx context.Context, movieID int64, timing string, capacity int) (*Show, error)
	GetShow(ctx context.Context, id int64) (*Show, error)
	ListShowsForMovie(ctx context.Context, movieID int64) ([]*Show, error)
}
