package domain

import "time"

type UnavailableReason string

const (
	UnavailableReasonLocked    UnavailableReason = "locked"
	UnavailableReasonPurchased UnavailableReason = "purchased"
)

// UnavailableSeat is an advisory snapshot entry for display. Locked seats
// carry the owning session and expiry, purchased seats the purchase id. The
// locking protocol re-validates at write time; a read-time availability
// result must never be trusted for a write decision.
type UnavailableSeat struct {
	ShowID string
	SeatID string
	Reason UnavailableReason

	// Set when Reason is locked.
	LockOwner  string
	LockExpiry time.Time

	// Set when Reason is purchased.
	PurchaseID string
}
