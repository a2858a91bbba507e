package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adrienbaron/lecoindujazz/api"
)

func TestListShows(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/shows", nil)

	app.ListShowsHandler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response api.ShowsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.ShowsResponse{Shows: make([]api.Show, 0, 3)}
	for _, show := range app.catalog.Shows() {
		want.Shows = append(want.Shows, api.Show{
			Id:    show.ID,
			Title: show.Title,
			Date:  show.Date,
		})
	}

	diff := cmp.Diff(want, response)
	if diff != "" {
		t.Errorf("Response mismatch (-want +got):\n%s", diff)
	}
}
