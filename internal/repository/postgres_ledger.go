package repository

import (
	"context"

	"github.com/ekinunal/seat-inventory/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresLedgerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLedgerRepository(db *pgxpool.Pool) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{
		db: db,
	}
}

// ListEvents returns the show's booking events in commit order.
func (p *PostgresLedgerRepository) ListEvents(ctx context.Context, showID int64) ([]*domain.BookingEvent, error) {
	query := `
		SELECT seq, id, show_id, delta, created_at
		FROM booking_events
		WHERE show_id = $1
		ORDER BY seq
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.BookingEvent{}

	for rows.Next() {
		var event domain.BookingEvent

		err := rows.Scan(&event.Seq, &event.ID, &event.ShowID, &event.Delta, &event.CreatedAt)
		if err != nil {
			return nil, err
		}

		events = append(events, &event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
