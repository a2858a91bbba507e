package app

import (
	"net/http"

	"github.com/adrienbaron/lecoindujazz/api"
)

func (app *Application) ListShowsHandler(w http.ResponseWriter, r *http.Request) {
	shows := app.catalog.Shows()

	apiShows := make([]api.Show, len(shows))
	for i, show := range shows {
		apiShows[i] = api.Show{
			Id:    show.ID,
			Title: show.Title,
			Date:  show.Date,
		}
	}

	resp := api.ShowsResponse{Shows: apiShows}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
