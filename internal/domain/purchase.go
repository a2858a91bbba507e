package domain

import (
	"context"
	"time"
)

// Purchase is a completed transaction. Its ID is the payment provider's
// checkout session id, except for admin-issued purchases which carry a
// generated id with the "admin-" prefix.
type Purchase struct {
	ID    string
	Name  string
	Email string
}

type PurchasedSeat struct {
	ShowID     string
	SeatID     string
	PurchaseID string
}

type Customer struct {
	Name  string
	Email string
}

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusLocked    SeatStatus = "locked"
	SeatStatusPurchased SeatStatus = "purchased"
)

// SeatStatusChange is one entry of an admin override batch: the seat to
// toggle and the status the admin's screen displayed for it. A mismatch with
// the freshly computed status aborts the whole batch.
type SeatStatusChange struct {
	SeatID   string
	Expected SeatStatus
}

type PurchaseRepository interface {
	// RegisterPurchase settles a checkout: in one transaction it inserts the
	// purchase keyed by the checkout session id, one purchased seat per lock
	// stamped with that id, and deletes those locks. A second call with the
	// same id returns ErrDuplicateSettlement without touching anything; an id
	// with no stamped locks returns ErrNoSeatsForCheckoutRef.
	RegisterPurchase(ctx context.Context, checkoutSessionID string, customer Customer) ([]PurchasedSeat, error)

	GetSeatsByShow(ctx context.Context, showID string) ([]PurchasedSeat, error)

	// SetSeatStatuses applies an admin override batch. Each seat's current
	// status is recomputed inside the transaction and compared against the
	// expected one; any mismatch aborts the batch with StaleSeatStatusError.
	// On success: available seats become purchased under purchaseID,
	// locked seats have their lock deleted regardless of owner, purchased
	// seats are released (the purchase row goes too once no seats reference
	// it).
	SetSeatStatuses(ctx context.Context, showID string, changes []SeatStatusChange, purchaseID string, now time.Time) error
}
