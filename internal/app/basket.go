package app

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

func (app *Application) GetBasketHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())
	if sessionID == "" {
		app.serverErrorResponse(w, r, domain.ErrNoSession)
		return
	}

	locks, err := app.lockRepo.GetActiveBySession(r.Context(), sessionID, time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp, err := app.basketResponse(locks)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) basketResponse(locks []domain.SeatLock) (api.BasketResponse, error) {
	byShow := make(map[string][]domain.SeatLock)
	for _, lock := range locks {
		byShow[lock.ShowID] = append(byShow[lock.ShowID], lock)
	}

	resp := api.BasketResponse{
		Shows: make([]api.BasketShow, 0, len(byShow)),
		Total: decimal.Zero,
	}

	for showID, showLocks := range byShow {
		show, err := app.catalog.ShowByID(showID)
		if err != nil {
			return api.BasketResponse{}, err
		}

		basketShow := api.BasketShow{
			ShowId: show.ID,
			Title:  show.Title,
			Date:   show.Date,
			Seats:  make([]api.BasketSeat, 0, len(showLocks)),
		}

		for _, lock := range showLocks {
			seat, err := app.catalog.GetSeat(lock.SeatID)
			if err != nil {
				return api.BasketResponse{}, err
			}

			price := app.pricer.SeatPrice(seat, lock)
			resp.Total = resp.Total.Add(price)

			basketShow.Seats = append(basketShow.Seats, api.BasketSeat{
				SeatId:        seat.ID,
				Section:       seat.Section.Title(),
				Label:         seat.Label(),
				Price:         price,
				HasChildOnLap: lock.HasChildOnLap,
				LockedUntil:   lock.LockedUntil,
			})
		}

		sort.Slice(basketShow.Seats, func(i, j int) bool {
			return basketShow.Seats[i].SeatId < basketShow.Seats[j].SeatId
		})

		resp.Shows = append(resp.Shows, basketShow)
	}

	sort.Slice(resp.Shows, func(i, j int) bool {
		return resp.Shows[i].Date.Before(resp.Shows[j].Date)
	})

	return resp, nil
}

func (app *Application) RemoveBasketSeatHandler(w http.ResponseWriter, r *http.Request) {
	var req api.BasketSeatRequest

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

	sessionID := app.sessionManager.Token(r.Context())
	if sessionID == "" {
		app.serverErrorResponse(w, r, domain.ErrNoSession)
		return
	}

	err = app.lockRepo.Delete(r.Context(), req.ShowId, req.SeatId, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) SetChildOnLapHandler(w http.ResponseWriter, r *http.Request) {
	var req api.ChildOnLapRequest

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

	sessionID := app.sessionManager.Token(r.Context())
	if sessionID == "" {
		app.serverErrorResponse(w, r, domain.ErrNoSession)
		return
	}

	err = app.lockRepo.SetChildOnLap(r.Context(), req.ShowId, req.SeatId, sessionID, req.HasChildOnLap)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCheckoutSessionHandler starts payment for the session's basket. The
// Stripe session is created first; only on provider success are the locks
// extended to the payment window and stamped with the checkout reference. A
// provider failure leaves the basket exactly as it was.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	if !app.config.bookingOpen {
		app.errorResponse(w, r, http.StatusForbidden, domain.ErrBookingClosed.Error())
		return
	}

	sessionID := app.sessionManager.Token(r.Context())
	if sessionID == "" {
		app.serverErrorResponse(w, r, domain.ErrNoSession)
		return
	}

	now := time.Now()

	locks, err := app.lockRepo.GetActiveBySession(r.Context(), sessionID, now)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(locks) == 0 {
		app.errorResponse(w, r, http.StatusConflict, domain.ErrEmptyBasket.Error())
		return
	}

	items := make([]domain.CheckoutItem, 0, len(locks))
	for _, lock := range locks {
		seat, err := app.catalog.GetSeat(lock.SeatID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		show, err := app.catalog.ShowByID(lock.ShowID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		price := app.pricer.SeatPrice(seat, lock)

		description := show.Title + " - " + seat.Section.Title() + " " + seat.Label()
		if lock.HasChildOnLap {
			description += " (enfant sur les genoux)"
		}

		items = append(items, domain.CheckoutItem{
			Description: description,
			UnitAmount:  price.Mul(decimal.NewFromInt(100)).IntPart(),
		})
	}

	expiresAt := now.Add(checkoutLockTTL)

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(sessionID, items, expiresAt)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	updated, err := app.lockRepo.ExtendForCheckout(r.Context(), sessionID, checkoutSession.ID, expiresAt, now)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.logger.Info("checkout session created",
		"checkoutSessionId", checkoutSession.ID, "seats", updated)

	resp := api.CheckoutSessionResponse{RedirectUrl: checkoutSession.URL}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
