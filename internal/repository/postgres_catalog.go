package repository

import (
	"context"
	"errors"

	"github.com/ekinunal/seat-inventory/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) CreateMovie(ctx context.Context, title string) (*domain.Movie, error) {
	query := `
		INSERT INTO movies (title)
		VALUES ($1)
		RETURNING id, title, created_at
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, title).Scan(&movie.ID, &movie.Title, &movie.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrMovieAlreadyExists
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresCatalogRepository) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `
		SELECT id, title, created_at
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresCatalogRepository) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	query := `
		SELECT id, title, created_at
		FROM movies
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(&movie.ID, &movie.Title, &movie.CreatedAt)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresCatalogRepository) CreateShow(ctx context.Context, movieID int64, timing string, capacity int) (*domain.Show, error) {
	query := `
		INSERT INTO shows (movie_id, timing, capacity, available)
		VALUES ($1, $2, $3, $3)
		RETURNING id, movie_id, timing, capacity, available, created_at
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, movieID, timing, capacity).Scan(
		&show.ID,
		&show.MovieID,
		&show.Timing,
		&show.Capacity,
		&show.Available,
		&show.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresCatalogRepository) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, timing, capacity, available, created_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.Timing,
		&show.Capacity,
		&show.Available,
		&show.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresCatalogRepository) ListShowsForMovie(ctx context.Context, movieID int64) ([]*domain.Show, error) {
	query := `
		SELECT id, movie_id, timing, capacity, available, created_at
		FROM shows
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []*domain.Show{}

	for rows.Next() {
		var show domain.Show

		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.Timing,
			&show.Capacity,
			&show.Available,
			&show.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		shows = append(shows, &show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}
