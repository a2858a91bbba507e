package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

func (app *Application) GetShowSeatMapHandler(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showID")

	show, err := app.catalog.ShowByID(showID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	unavailable, err := app.unavailableSeats(r, showID, time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		ShowId:   show.ID,
		Title:    show.Title,
		Date:     show.Date,
		Sections: make([]api.SeatSection, 0, len(app.catalog.Sections())),
	}

	for _, section := range app.catalog.Sections() {
		apiSection := api.SeatSection{
			Type:  string(section.Type),
			Title: section.Type.Title(),
			Rows:  make([]api.SeatRow, 0, len(section.Rows)),
		}

		for _, row := range section.Rows {
			apiRow := api.SeatRow{
				Letter: row.Letter,
				Seats:  make([]api.Seat, 0, len(row.Seats)),
			}

			for _, seat := range row.Seats {
				apiSeat := api.Seat{
					Id:                     seat.ID,
					Num:                    seat.Num,
					IsBis:                  seat.IsBis,
					HasRestrictedView:      seat.HasRestrictedView,
					IsWheelchairAccessible: seat.IsWheelchairAccessible,
					Available:              !seat.IsSecurity,
				}

				if entry, ok := unavailable[seat.ID]; ok {
					apiSeat.Available = false
					reason := string(entry.Reason)
					apiSeat.UnavailableReason = &reason
				}

				apiRow.Seats = append(apiRow.Seats, apiSeat)
			}

			apiSection.Rows = append(apiSection.Rows, apiRow)
		}

		resp.Sections = append(resp.Sections, apiSection)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// unavailableSeats merges active locks and purchased seats for one show into
// a per-seat snapshot. Purchased wins over locked when both are present.
func (app *Application) unavailableSeats(r *http.Request, showID string, now time.Time) (map[string]domain.UnavailableSeat, error) {
	unavailable := make(map[string]domain.UnavailableSeat)

	locks, err := app.lockRepo.GetActiveByShow(r.Context(), showID, now)
	if err != nil {
		return nil, err
	}
	for _, lock := range locks {
		unavailable[lock.SeatID] = domain.UnavailableSeat{
			ShowID:     showID,
			SeatID:     lock.SeatID,
			Reason:     domain.UnavailableReasonLocked,
			LockOwner:  lock.SessionID,
			LockExpiry: lock.LockedUntil,
		}
	}

	purchased, err := app.purchaseRepo.GetSeatsByShow(r.Context(), showID)
	if err != nil {
		return nil, err
	}
	for _, seat := range purchased {
		unavailable[seat.SeatID] = domain.UnavailableSeat{
			ShowID:     showID,
			SeatID:     seat.SeatID,
			Reason:     domain.UnavailableReasonPurchased,
			PurchaseID: seat.PurchaseID,
		}
	}

	return unavailable, nil
}
