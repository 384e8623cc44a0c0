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

type PostgresInventoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresInventoryRepository(db *pgxpool.Pool) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{
		db: db,
	}
}

// WithShowLock serializes fn against every other mutation of the same show by
// locking its row for the span of one transaction. NOWAIT turns lock
// contention into an immediate ErrShowBusy instead of queueing the caller.
// Rows of other shows stay untouched, so shows never serialize against each
// other.
func (p *PostgresInventoryRepository) WithShowLock(
	ctx context.Context,
	showID int64,
	fn func(unit domain.InventoryUnit, show *domain.Show) error) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT id, movie_id, timing, capacity, available, created_at
			FROM shows
			WHERE id = $1
			FOR UPDATE NOWAIT
		`

		var show domain.Show

		err := tx.QueryRow(ctx, query, showID).Scan(
			&show.ID,
			&show.MovieID,
			&show.Timing,
			&show.Capacity,
			&show.Available,
			&show.CreatedAt,
		)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrShowNotFound
			}

			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable {
				return domain.ErrShowBusy
			}

			return err
		}

		return fn(&inventoryUnit{tx: tx}, &show)
	})
}

func (p *PostgresInventoryRepository) AvailableSeats(ctx context.Context, showID int64) (int, error) {
	query := `
		SELECT available
		FROM shows
		WHERE id = $1
	`

	var available int

	err := p.db.QueryRow(ctx, query, showID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrShowNotFound
		}

		return 0, err
	}

	return available, nil
}

// inventoryUnit issues counter and ledger writes on the transaction that
// holds the show's row lock.
type inventoryUnit struct {
	tx pgx.Tx
}

func (u *inventoryUnit) UpdateAvailable(ctx context.Context, showID int64, available int) error {
	query := `
		UPDATE shows
		SET available = $1
		WHERE id = $2
	`

	tag, err := u.tx.Exec(ctx, query, available, showID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}

	return nil
}

func (u *inventoryUnit) AppendEvent(ctx context.Context, event *domain.BookingEvent) error {
	query := `
		INSERT INTO booking_events (id, show_id, delta)
		VALUES ($1, $2, $3)
		RETURNING seq, created_at
	`

	return u.tx.QueryRow(ctx, query, event.ID, event.ShowID, event.Delta).Scan(&event.Seq, &event.CreatedAt)
}

func (u *inventoryUnit) ReplayAvailable(ctx context.Context, showID int64) (int, int, error) {
	query := `
		SELECT s.capacity + COALESCE(SUM(e.delta), 0), COUNT(e.seq)
		FROM shows s
		LEFT JOIN booking_events e ON e.show_id = s.id
		WHERE s.id = $1
		GROUP BY s.capacity
	`

	var available, events int

	err := u.tx.QueryRow(ctx, query, showID).Scan(&available, &events)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrShowNotFound
		}

		return 0, 0, err
	}

	return available, events, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
