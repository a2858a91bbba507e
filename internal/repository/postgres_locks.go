package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type PostgresLockRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLockRepository(db *pgxpool.Pool) *PostgresLockRepository {
	return &PostgresLockRepository{
		db: db,
	}
}

const lockColumns = `show_id, seat_id, session_id, locked_until, stripe_checkout_session_id, has_child_on_lap`

func (p *PostgresLockRepository) GetByShowAndSeats(
	ctx context.Context,
	showID string,
	seatIDs []string) ([]domain.SeatLock, error) {

	query := `
		SELECT ` + lockColumns + `
		FROM locked_seats
		WHERE show_id = $1 AND seat_id = ANY($2)
	`

	rows, err := p.db.Query(ctx, query, showID, seatIDs)
	if err != nil {
		return nil, err
	}

	return scanLocks(rows)
}

func (p *PostgresLockRepository) GetActiveByShow(
	ctx context.Context,
	showID string,
	now time.Time) ([]domain.SeatLock, error) {

	query := `
		SELECT ` + lockColumns + `
		FROM locked_seats
		WHERE show_id = $1 AND locked_until > $2
	`

	rows, err := p.db.Query(ctx, query, showID, now)
	if err != nil {
		return nil, err
	}

	return scanLocks(rows)
}

func (p *PostgresLockRepository) GetActiveBySession(
	ctx context.Context,
	sessionID string,
	now time.Time) ([]domain.SeatLock, error) {

	query := `
		SELECT ` + lockColumns + `
		FROM locked_seats
		WHERE session_id = $1 AND locked_until > $2
		ORDER BY show_id, seat_id
	`

	rows, err := p.db.Query(ctx, query, sessionID, now)
	if err != nil {
		return nil, err
	}

	return scanLocks(rows)
}

// AcquireSeats replaces the snapshot locks with fresh ones for the session.
// Deletes are conditioned on the exact (seat, session, locked_until) values
// read by the caller, so a lock that changed hands in between is never
// clobbered: the stale row survives the delete, the insert trips the
// composite primary key and the whole transaction rolls back as a conflict.
func (p *PostgresLockRepository) AcquireSeats(
	ctx context.Context,
	showID, sessionID string,
	seatIDs []string,
	snapshot []domain.SeatLock,
	until time.Time) error {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM locked_seats
			WHERE show_id = $1 AND seat_id = $2 AND session_id = $3 AND locked_until = $4
		`

		insertQuery := `
			INSERT INTO locked_seats (show_id, seat_id, session_id, locked_until)
			VALUES ($1, $2, $3, $4)
		`

		batch := &pgx.Batch{}
		for _, lock := range snapshot {
			batch.Queue(deleteQuery, lock.ShowID, lock.SeatID, lock.SessionID, lock.LockedUntil)
		}
		for _, seatID := range seatIDs {
			batch.Queue(insertQuery, showID, seatID, sessionID, until)
		}

		return tx.SendBatch(ctx, batch).Close()
	})

	if isUniqueViolation(err) {
		return domain.ErrSeatConflict
	}

	return err
}

func (p *PostgresLockRepository) ExtendForCheckout(
	ctx context.Context,
	sessionID, checkoutSessionID string,
	until, now time.Time) (int, error) {

	query := `
		UPDATE locked_seats
		SET locked_until = $1, stripe_checkout_session_id = $2
		WHERE session_id = $3 AND locked_until > $4
	`

	tag, err := p.db.Exec(ctx, query, until, checkoutSessionID, sessionID, now)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (p *PostgresLockRepository) Delete(ctx context.Context, showID, seatID, sessionID string) error {
	query := `
		DELETE FROM locked_seats
		WHERE show_id = $1 AND seat_id = $2 AND session_id = $3
	`

	tag, err := p.db.Exec(ctx, query, showID, seatID, sessionID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresLockRepository) SetChildOnLap(
	ctx context.Context,
	showID, seatID, sessionID string,
	hasChildOnLap bool) error {

	query := `
		UPDATE locked_seats
		SET has_child_on_lap = $1
		WHERE show_id = $2 AND seat_id = $3 AND session_id = $4
	`

	tag, err := p.db.Exec(ctx, query, hasChildOnLap, showID, seatID, sessionID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresLockRepository) GetExpired(
	ctx context.Context,
	before time.Time,
	limit int) ([]domain.SeatLock, error) {

	query := `
		SELECT ` + lockColumns + `
		FROM locked_seats
		WHERE locked_until <= $1
		LIMIT $2
	`

	rows, err := p.db.Query(ctx, query, before, limit)
	if err != nil {
		return nil, err
	}

	return scanLocks(rows)
}

// DeleteExact removes rows matching the given locks field-for-field. A lock
// that was renewed since it was read no longer matches and is left alone.
func (p *PostgresLockRepository) DeleteExact(ctx context.Context, locks []domain.SeatLock) error {
	query := `
		DELETE FROM locked_seats
		WHERE show_id = $1 AND seat_id = $2 AND session_id = $3 AND locked_until = $4
	`

	batch := &pgx.Batch{}
	for _, lock := range locks {
		batch.Queue(query, lock.ShowID, lock.SeatID, lock.SessionID, lock.LockedUntil)
	}

	return p.db.SendBatch(ctx, batch).Close()
}

func scanLocks(rows pgx.Rows) ([]domain.SeatLock, error) {
	defer rows.Close()

	locks := make([]domain.SeatLock, 0)

	for rows.Next() {
		var lock domain.SeatLock

		err := rows.Scan(
			&lock.ShowID,
			&lock.SeatID,
			&lock.SessionID,
			&lock.LockedUntil,
			&lock.StripeCheckoutSessionID,
			&lock.HasChildOnLap,
		)
		if err != nil {
			return nil, err
		}

		locks = append(locks, lock)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locks, nil
}
