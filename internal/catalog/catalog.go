// Package catalog holds the static, read-only description of shows and seat
// inventory. Seat geometry is generated once from the seating plan and reused
// across all shows; nothing in here is mutated at runtime.
package catalog

import (
	"time"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type Catalog struct {
	shows    []domain.Show
	showByID map[string]domain.Show
	sections []Section
	seats    []domain.Seat
	seatByID map[string]domain.Seat
}

func New(shows []domain.Show, sections []Section) *Catalog {
	c := &Catalog{
		shows:    shows,
		showByID: make(map[string]domain.Show, len(shows)),
		sections: sections,
		seatByID: make(map[string]domain.Seat),
	}

	for _, show := range shows {
		c.showByID[show.ID] = show
	}

	for _, section := range sections {
		for _, r := range section.Rows {
			for _, s := range r.Seats {
				c.seats = append(c.seats, s)
				c.seatByID[s.ID] = s
			}
		}
	}

	return c
}

func NewCalaisTheatre(shows []domain.Show) *Catalog {
	return New(shows, CalaisTheatreSections())
}

func (c *Catalog) Shows() []domain.Show {
	return c.shows
}

func (c *Catalog) ShowByID(showID string) (domain.Show, error) {
	show, ok := c.showByID[showID]
	if !ok {
		return domain.Show{}, domain.ErrRecordNotFound
	}
	return show, nil
}

// ListSeats returns the seats for a show in plan order. The geometry is the
// same for every show; only the show ID is validated.
func (c *Catalog) ListSeats(showID string) ([]domain.Seat, error) {
	if _, err := c.ShowByID(showID); err != nil {
		return nil, err
	}
	return c.seats, nil
}

func (c *Catalog) GetSeat(seatID string) (domain.Seat, error) {
	s, ok := c.seatByID[seatID]
	if !ok {
		return domain.Seat{}, domain.ErrRecordNotFound
	}
	return s, nil
}

func (c *Catalog) Sections() []Section {
	return c.sections
}

// DefaultShows is the season's programme. Shows are defined here, not in the
// database, and never change at runtime.
func DefaultShows() []domain.Show {
	paris := time.FixedZone("Europe/Paris", 2*60*60)

	return []domain.Show{
		{
			ID:    "gala-2024-06-21",
			Title: "Gala de fin de saison",
			Date:  time.Date(2024, time.June, 21, 20, 30, 0, 0, paris),
		},
		{
			ID:    "gala-2024-06-22",
			Title: "Gala de fin de saison",
			Date:  time.Date(2024, time.June, 22, 20, 30, 0, 0, paris),
		},
		{
			ID:    "gala-2024-06-23",
			Title: "Gala de fin de saison",
			Date:  time.Date(2024, time.June, 23, 15, 0, 0, 0, paris),
		},
	}
}
