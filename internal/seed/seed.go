// Package seed bootstraps the fixed demo catalog. Seeding is idempotent:
// title uniqueness in the store decides whether a movie (and its shows) is
// inserted, so re-running never duplicates a movie or resets the availability
// of an existing show.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ekinunal/seat-inventory/internal/domain"
)

const defaultCapacity = 50

type ShowSpec struct {
	Timing   string
	Capacity int
}

type MovieSpec struct {
	Title string
	Shows []ShowSpec
}

// Catalog is the built-in demo lineup.
func Catalog() []MovieSpec {
	return []MovieSpec{
		{Title: "Avengers", Shows: showsAt("10:00 AM", "1:00 PM", "4:00 PM")},
		{Title: "Minions", Shows: showsAt("11:00 AM", "2:00 PM", "5:00 PM")},
		{Title: "Pulp Fiction", Shows: showsAt("12:00 PM", "3:00 PM", "6:00 PM")},
		{Title: "Rockstar", Shows: showsAt("9:00 AM", "12:00 PM", "3:00 PM")},
	}
}

func showsAt(timings ...string) []ShowSpec {
	shows := make([]ShowSpec, len(timings))
	for i, timing := range timings {
		shows[i] = ShowSpec{Timing: timing, Capacity: defaultCapacity}
	}

	return shows
}

// Run inserts every catalog movie that is not already present. An existing
// title skips the movie together with its shows.
func Run(ctx context.Context, catalog domain.CatalogRepository, logger *slog.Logger) error {
	return Apply(ctx, catalog, logger, Catalog())
}

func Apply(ctx context.Context, catalog domain.CatalogRepository, logger *slog.Logger, movies []MovieSpec) error {
	for _, spec := range movies {
		movie, err := catalog.CreateMovie(ctx, spec.Title)
		if err != nil {
			if errors.Is(err, domain.ErrMovieAlreadyExists) {
				logger.Info("seed: movie already present, skipping", "title", spec.Title)
				continue
			}

			return fmt.Errorf("seed movie %q: %w", spec.Title, err)
		}

		for _, showSpec := range spec.Shows {
			_, err := catalog.CreateShow(ctx, movie.ID, showSpec.Timing, showSpec.Capacity)
			if err != nil {
				return fmt.Errorf("seed show %q for movie %q: %w", showSpec.Timing, spec.Title, err)
			}
		}

		logger.Info("seed: movie inserted", "title", spec.Title, "shows", len(spec.Shows))
	}

	return nil
}
