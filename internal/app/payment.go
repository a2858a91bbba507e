package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v82"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

// StripeWebhookHandler settles completed checkouts. Stripe retries on any
// non-2xx, so the only responses that are not 200 are a bad signature and a
// genuine store failure: a duplicate notification or an unknown checkout
// reference is acknowledged and logged, never retried.
func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 65536))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.paymentProvider.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		app.logger.Info("ignoring webhook event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	var checkoutSession stripe.CheckoutSession
	err = json.Unmarshal(event.Data.Raw, &checkoutSession)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	customer := domain.Customer{}
	if checkoutSession.CustomerDetails != nil {
		customer.Name = checkoutSession.CustomerDetails.Name
		customer.Email = checkoutSession.CustomerDetails.Email
	}

	seats, err := app.purchaseRepo.RegisterPurchase(r.Context(), checkoutSession.ID, customer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSettlement):
			app.logger.Info("settlement already processed",
				"checkoutSessionId", checkoutSession.ID)
			w.WriteHeader(http.StatusOK)
		case errors.Is(err, domain.ErrNoSeatsForCheckoutRef):
			app.logger.Error("no locked seats for checkout session",
				"checkoutSessionId", checkoutSession.ID)
			w.WriteHeader(http.StatusOK)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("settlement registered",
		"checkoutSessionId", checkoutSession.ID, "seats", len(seats))

	if customer.Email != "" {
		app.sendPurchaseConfirmation(customer, seats)
	}

	w.WriteHeader(http.StatusOK)
}

func (app *Application) sendPurchaseConfirmation(customer domain.Customer, seats []domain.PurchasedSeat) {
	type confirmationSeat struct {
		Show    string
		Section string
		Seat    string
	}

	data := struct {
		Name  string
		Seats []confirmationSeat
	}{Name: customer.Name}

	for _, purchased := range seats {
		show, err := app.catalog.ShowByID(purchased.ShowID)
		if err != nil {
			app.logger.Error(err.Error(), "showId", purchased.ShowID)
			continue
		}
		seat, err := app.catalog.GetSeat(purchased.SeatID)
		if err != nil {
			app.logger.Error(err.Error(), "seatId", purchased.SeatID)
			continue
		}

		data.Seats = append(data.Seats, confirmationSeat{
			Show:    show.Title,
			Section: seat.Section.Title(),
			Seat:    seat.Label(),
		})
	}

	app.background(func() {
		err := app.mailer.Send(customer.Email, "purchase_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error(err.Error(), "recipient", customer.Email)
		}
	})
}
