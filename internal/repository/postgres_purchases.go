package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type PostgresPurchaseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPurchaseRepository(db *pgxpool.Pool) *PostgresPurchaseRepository {
	return &PostgresPurchaseRepository{
		db: db,
	}
}

// RegisterPurchase converts the locks stamped with a checkout session id
// into a permanent purchase, all-or-nothing. The purchase row is keyed by the
// checkout session id, which makes the webhook's natural retries idempotent:
// a second delivery finds the row and returns ErrDuplicateSettlement.
func (p *PostgresPurchaseRepository) RegisterPurchase(
	ctx context.Context,
	checkoutSessionID string,
	customer domain.Customer) ([]domain.PurchasedSeat, error) {

	var purchasedSeats []domain.PurchasedSeat

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var exists bool

		err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM purchases WHERE id = $1)`,
			checkoutSessionID).Scan(&exists)
		if err != nil {
			return err
		}

		if exists {
			return domain.ErrDuplicateSettlement
		}

		query := `
			SELECT show_id, seat_id
			FROM locked_seats
			WHERE stripe_checkout_session_id = $1
		`

		rows, err := tx.Query(ctx, query, checkoutSessionID)
		if err != nil {
			return err
		}

		for rows.Next() {
			seat := domain.PurchasedSeat{PurchaseID: checkoutSessionID}

			if err := rows.Scan(&seat.ShowID, &seat.SeatID); err != nil {
				rows.Close()
				return err
			}

			purchasedSeats = append(purchasedSeats, seat)
		}
		rows.Close()

		if err := rows.Err(); err != nil {
			return err
		}

		if len(purchasedSeats) == 0 {
			return domain.ErrNoSeatsForCheckoutRef
		}

		query = `
			INSERT INTO purchases (id, name, email)
			VALUES ($1, $2, $3)
		`

		_, err = tx.Exec(ctx, query, checkoutSessionID, customer.Name, customer.Email)
		if err != nil {
			return err
		}

		copyRows := make([][]any, 0, len(purchasedSeats))
		for _, seat := range purchasedSeats {
			copyRows = append(copyRows, []any{seat.ShowID, seat.SeatID, seat.PurchaseID})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"purchased_seats"},
			[]string{"show_id", "seat_id", "purchase_id"},
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return err
		}

		query = `
			DELETE FROM locked_seats
			WHERE stripe_checkout_session_id = $1
		`

		_, err = tx.Exec(ctx, query, checkoutSessionID)

		return err
	})

	if err != nil {
		return nil, err
	}

	return purchasedSeats, nil
}

func (p *PostgresPurchaseRepository) GetSeatsByShow(
	ctx context.Context,
	showID string) ([]domain.PurchasedSeat, error) {

	query := `
		SELECT show_id, seat_id, purchase_id
		FROM purchased_seats
		WHERE show_id = $1
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchasedSeats := make([]domain.PurchasedSeat, 0)

	for rows.Next() {
		var seat domain.PurchasedSeat

		err := rows.Scan(&seat.ShowID, &seat.SeatID, &seat.PurchaseID)
		if err != nil {
			return nil, err
		}

		purchasedSeats = append(purchasedSeats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchasedSeats, nil
}

// SetSeatStatuses applies an admin override batch. Every seat's status is
// recomputed inside the transaction, right next to the writes; any mismatch
// with what the admin's screen displayed aborts the whole batch, so an admin
// acting on a stale view never silently overwrites a concurrent booking.
func (p *PostgresPurchaseRepository) SetSeatStatuses(
	ctx context.Context,
	showID string,
	changes []domain.SeatStatusChange,
	purchaseID string,
	now time.Time) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		seatIDs := make([]string, 0, len(changes))
		for _, change := range changes {
			seatIDs = append(seatIDs, change.SeatID)
		}

		locked, err := lockedSeatIDs(ctx, tx, showID, seatIDs, now)
		if err != nil {
			return err
		}

		purchased, err := purchasedSeatPurchases(ctx, tx, showID, seatIDs)
		if err != nil {
			return err
		}

		var stale []string
		for _, change := range changes {
			current := domain.SeatStatusAvailable
			if locked[change.SeatID] {
				current = domain.SeatStatusLocked
			}
			if _, ok := purchased[change.SeatID]; ok {
				current = domain.SeatStatusPurchased
			}

			if current != change.Expected {
				stale = append(stale, change.SeatID)
			}
		}

		if len(stale) > 0 {
			return domain.StaleSeatStatusError{SeatIDs: stale}
		}

		needsPurchaseRow := false
		for _, change := range changes {
			if change.Expected == domain.SeatStatusAvailable {
				needsPurchaseRow = true
				break
			}
		}

		if needsPurchaseRow {
			query := `
				INSERT INTO purchases (id, name, email)
				VALUES ($1, 'Admin', '')
			`

			if _, err := tx.Exec(ctx, query, purchaseID); err != nil {
				return err
			}
		}

		for _, change := range changes {
			switch change.Expected {
			case domain.SeatStatusAvailable:
				query := `
					INSERT INTO purchased_seats (show_id, seat_id, purchase_id)
					VALUES ($1, $2, $3)
				`

				if _, err := tx.Exec(ctx, query, showID, change.SeatID, purchaseID); err != nil {
					return err
				}

			case domain.SeatStatusLocked:
				// Admin override bypasses session ownership.
				query := `
					DELETE FROM locked_seats
					WHERE show_id = $1 AND seat_id = $2
				`

				if _, err := tx.Exec(ctx, query, showID, change.SeatID); err != nil {
					return err
				}

			case domain.SeatStatusPurchased:
				query := `
					DELETE FROM purchased_seats
					WHERE show_id = $1 AND seat_id = $2
				`

				if _, err := tx.Exec(ctx, query, showID, change.SeatID); err != nil {
					return err
				}

				// Drop the purchase record once nothing references it.
				query = `
					DELETE FROM purchases
					WHERE id = $1
					AND NOT EXISTS (SELECT 1 FROM purchased_seats WHERE purchase_id = $1)
				`

				if _, err := tx.Exec(ctx, query, purchased[change.SeatID]); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func lockedSeatIDs(
	ctx context.Context,
	tx pgx.Tx,
	showID string,
	seatIDs []string,
	now time.Time) (map[string]bool, error) {

	query := `
		SELECT seat_id
		FROM locked_seats
		WHERE show_id = $1 AND seat_id = ANY($2) AND locked_until > $3
	`

	rows, err := tx.Query(ctx, query, showID, seatIDs, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locked := make(map[string]bool)

	for rows.Next() {
		var seatID string

		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}

		locked[seatID] = true
	}

	return locked, rows.Err()
}

func purchasedSeatPurchases(
	ctx context.Context,
	tx pgx.Tx,
	showID string,
	seatIDs []string) (map[string]string, error) {

	query := `
		SELECT seat_id, purchase_id
		FROM purchased_seats
		WHERE show_id = $1 AND seat_id = ANY($2)
	`

	rows, err := tx.Query(ctx, query, showID, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := make(map[string]string)

	for rows.Next() {
		var seatID, purchaseID string

		if err := rows.Scan(&seatID, &purchaseID); err != nil {
			return nil, err
		}

		purchases[seatID] = purchaseID
	}

	return purchases, rows.Err()
}
