package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrSeatConflict          = errors.New("seat(s) are no longer available")
	ErrStaleSeatStatus       = errors.New("seat status changed since it was last displayed")
	ErrEmptyBasket           = errors.New("basket is empty or has expired")
	ErrNoSession             = errors.New("no session bound to the request")
	ErrNoSeatsForCheckoutRef = errors.New("no locked seats found for checkout session")
	ErrDuplicateSettlement   = errors.New("settlement already processed for checkout session")
	ErrBookingClosed         = errors.New("booking is closed")
	ErrSeatNotForSale        = errors.New("seat is not open for sale")
)

// SeatConflictError reports which seats of a batch were claimed by someone
// else, so the caller can resync and clear its stale selection.
type SeatConflictError struct {
	SeatIDs []string
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("seats already locked or purchased: %s", strings.Join(e.SeatIDs, ", "))
}

func (e SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}

// StaleSeatStatusError reports which seats no longer match the status the
// admin's screen displayed when the batch was submitted.
type StaleSeatStatusError struct {
	SeatIDs []string
}

func (e StaleSeatStatusError) Error() string {
	return fmt.Sprintf("seat statuses changed since last displayed: %s", strings.Join(e.SeatIDs, ", "))
}

func (e StaleSeatStatusError) Is(target error) bool {
	return target == ErrStaleSeatStatus
}
