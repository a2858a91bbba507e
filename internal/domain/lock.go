package domain

import (
	"context"
	"time"
)

// SeatLock is a temporary claim on a (show, seat) pair, owned by a browsing
// session. A lock whose LockedUntil is in the past is logically deleted:
// availability and conflict checks must ignore it even if the row is still
// physically present.
type SeatLock struct {
	ShowID                  string
	SeatID                  string
	SessionID               string
	LockedUntil             time.Time
	StripeCheckoutSessionID *string
	HasChildOnLap           bool
}

func (l SeatLock) Active(now time.Time) bool {
	return l.LockedUntil.After(now)
}

type LockRepository interface {
	// GetByShowAndSeats returns every lock row for the given seats,
	// regardless of owner or expiry. This is the snapshot the locking
	// protocol's compare-and-delete is conditioned on.
	GetByShowAndSeats(ctx context.Context, showID string, seatIDs []string) ([]SeatLock, error)

	GetActiveByShow(ctx context.Context, showID string, now time.Time) ([]SeatLock, error)
	GetActiveBySession(ctx context.Context, sessionID string, now time.Time) ([]SeatLock, error)

	// AcquireSeats deletes every snapshot lock by exact
	// (show, seat, session, lockedUntil) match, then inserts fresh locks for
	// all seatIDs, in one transaction. An insert that trips the
	// (show_id, seat_id) primary key means a concurrent writer won the race;
	// it surfaces as ErrSeatConflict and nothing is applied.
	AcquireSeats(ctx context.Context, showID, sessionID string, seatIDs []string, snapshot []SeatLock, until time.Time) error

	// ExtendForCheckout pushes out the expiry of all of the session's active
	// locks and stamps them with the checkout session reference. Returns the
	// number of locks updated.
	ExtendForCheckout(ctx context.Context, sessionID, checkoutSessionID string, until, now time.Time) (int, error)

	// Delete removes the session's own lock on a seat. Only the owner can
	// target a lock this way; admin removal goes through the purchase
	// repository's override path.
	Delete(ctx context.Context, showID, seatID, sessionID string) error

	SetChildOnLap(ctx context.Context, showID, seatID, sessionID string, hasChildOnLap bool) error

	// GetExpired and DeleteExact exist for the hygiene sweeper. Deletes are
	// conditioned on the exact expiry value read, so a lock that has since
	// been reused is never removed.
	GetExpired(ctx context.Context, before time.Time, limit int) ([]SeatLock, error)
	DeleteExact(ctx context.Context, locks []SeatLock) error
}
