package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureVisitorSession)

	r.Get("/health", app.GetHealth)

	r.Get("/shows", app.ListShowsHandler)
	r.Get("/shows/{showID}/seats", app.GetShowSeatMapHandler)
	r.Post("/shows/{showID}/seats", app.SubmitSeatSelectionHandler)

	r.Route("/basket", func(r chi.Router) {
		r.Get("/", app.GetBasketHandler)
		r.Post("/seats/remove", app.RemoveBasketSeatHandler)
		r.Post("/seats/child-on-lap", app.SetChildOnLapHandler)
		r.Post("/checkout", app.CreateCheckoutSessionHandler)
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/", app.StripeWebhookHandler)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", app.AdminLoginHandler)
		r.Post("/logout", app.AdminLogoutHandler)

		r.With(app.requireAdmin).Post("/shows/{showID}/seats", app.AdminSetSeatStatusesHandler)
	})

	return r
}
