package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

// SubmitSeatSelectionHandler locks a batch of seats for the caller's session.
// The request is all-or-nothing: if any seat is held by another session or
// already sold, nothing is locked and the contested seats are reported so the
// client can refresh its view.
func (app *Application) SubmitSeatSelectionHandler(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showID")

	if _, err := app.catalog.ShowByID(showID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var req api.SeatSelectionRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	for _, seatID := range req.SeatIds {
		seat, err := app.catalog.GetSeat(seatID)
		if err != nil {
			app.notFoundResponse(w, r)
			return
		}
		if seat.IsSecurity {
			app.notFoundResponseWithErr(w, r, domain.ErrSeatNotForSale)
			return
		}
	}

	sessionID := app.sessionManager.Token(r.Context())
	if sessionID == "" {
		app.serverErrorResponse(w, r, domain.ErrNoSession)
		return
	}

	now := time.Now()

	// Snapshot every lock row for the requested seats, expired ones included.
	// The snapshot is what the acquire below is conditioned on: expired rows
	// get swept as part of the same transaction, and a row renewed between
	// this read and the write makes the conditional delete miss, tripping the
	// primary key and failing the whole batch.
	snapshot, err := app.lockRepo.GetByShowAndSeats(r.Context(), showID, req.SeatIds)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	var contested []string
	for _, lock := range snapshot {
		if lock.SessionID != sessionID && lock.Active(now) {
			contested = append(contested, lock.SeatID)
		}
	}

	purchased, err := app.purchaseRepo.GetSeatsByShow(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	purchasedIDs := make(map[string]bool, len(purchased))
	for _, seat := range purchased {
		purchasedIDs[seat.SeatID] = true
	}
	for _, seatID := range req.SeatIds {
		if purchasedIDs[seatID] {
			contested = append(contested, seatID)
		}
	}

	if len(contested) > 0 {
		conflictErr := domain.SeatConflictError{SeatIDs: contested}
		app.conflictSeatsResponse(w, r, http.StatusConflict, conflictErr.Error(), contested)
		return
	}

	lockedUntil := now.Add(selectionLockTTL)

	err = app.lockRepo.AcquireSeats(r.Context(), showID, sessionID, req.SeatIds, snapshot, lockedUntil)
	if err != nil {
		if errors.Is(err, domain.ErrSeatConflict) {
			app.conflictSeatsResponse(w, r, http.StatusConflict, domain.ErrSeatConflict.Error(), req.SeatIds)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.SeatSelectionResponse{
		ShowId:      showID,
		SeatIds:     req.SeatIds,
		LockedUntil: lockedUntil,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
