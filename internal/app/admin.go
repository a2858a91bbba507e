package app

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

func (app *Application) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req api.AdminLoginRequest

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

	match := subtle.ConstantTimeCompare([]byte(req.Password), []byte(app.config.admin.password))
	if app.config.admin.password == "" || match != 1 {
		app.unauthorizedAccessResponse(w, r)
		return
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), true)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Remove(r.Context(), SessionKeyAdmin.String())

	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminSetSeatStatusesHandler toggles seat statuses in bulk. Each entry
// carries the status the admin's screen displayed; the store re-checks the
// live status inside the transaction and refuses the whole batch if any seat
// has changed under them, reporting which.
func (app *Application) AdminSetSeatStatusesHandler(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showID")

	if _, err := app.catalog.ShowByID(showID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var req api.AdminSeatStatusRequest

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

	changes := make([]domain.SeatStatusChange, 0, len(req.Seats))
	for _, seat := range req.Seats {
		if _, err := app.catalog.GetSeat(seat.SeatId); err != nil {
			app.notFoundResponse(w, r)
			return
		}

		changes = append(changes, domain.SeatStatusChange{
			SeatID:   seat.SeatId,
			Expected: domain.SeatStatus(seat.ExpectedStatus),
		})
	}

	purchaseID := "admin-" + uuid.New().String()

	err = app.purchaseRepo.SetSeatStatuses(r.Context(), showID, changes, purchaseID, time.Now())
	if err != nil {
		var staleErr domain.StaleSeatStatusError
		if errors.As(err, &staleErr) {
			app.conflictSeatsResponse(w, r, http.StatusConflict, staleErr.Error(), staleErr.SeatIDs)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
