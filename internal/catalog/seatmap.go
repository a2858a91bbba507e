package catalog

import "github.com/adrienbaron/lecoindujazz/internal/domain"

// seatDef describes a seat before it is bound to a section and row. The
// builders below reproduce the theatre's numbering schemes: most rows number
// seats even-decreasing on one side and odd-increasing on the other, center
// blocks alternate down to 1 and back up.
type seatDef struct {
	num                    int
	isBis                  bool
	isSecurity             bool
	hasRestrictedView      bool
	isWheelchairAccessible bool
}

func seat(num int) []seatDef {
	return []seatDef{{num: num}}
}

// alternateSeats numbers a center block from the highest even number down to
// 1, then back up through the odd numbers: 12, 10, ..., 2, 1, 3, ..., 13.
func alternateSeats(numSeats int) []seatDef {
	defs := make([]seatDef, 0, numSeats)

	current := numSeats
	if numSeats%2 != 0 {
		current = numSeats - 1
	}

	delta := -2
	for i := 0; i < numSeats; i++ {
		defs = append(defs, seatDef{num: current})
		current += delta
		if current <= 0 {
			current = 1
			delta = 2
		}
	}

	return defs
}

func seatsDecreasing(from, min int) []seatDef {
	var defs []seatDef
	for num := from; num >= min; num -= 2 {
		defs = append(defs, seatDef{num: num})
	}
	return defs
}

func seatsIncreasing(from, max int) []seatDef {
	var defs []seatDef
	for num := from; num <= max; num += 2 {
		defs = append(defs, seatDef{num: num})
	}
	return defs
}

// addBisAtStart prepends a fold-out seat carrying the first seat's number.
func addBisAtStart(defs []seatDef) []seatDef {
	bis := seatDef{num: defs[0].num, isBis: true}
	return append([]seatDef{bis}, defs...)
}

// addBisAtEnd appends a fold-out seat carrying the last seat's number.
func addBisAtEnd(defs []seatDef) []seatDef {
	bis := seatDef{num: defs[len(defs)-1].num, isBis: true}
	return append(defs, bis)
}

func withoutNum(defs []seatDef, num int) []seatDef {
	filtered := make([]seatDef, 0, len(defs))
	for _, d := range defs {
		if d.num != num {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func asSecurity(defs []seatDef) []seatDef {
	return mark(defs, func(d *seatDef) { d.isSecurity = true })
}

func withRestrictedView(defs []seatDef) []seatDef {
	return mark(defs, func(d *seatDef) { d.hasRestrictedView = true })
}

func asWheelchairAccessible(defs []seatDef) []seatDef {
	return mark(defs, func(d *seatDef) { d.isWheelchairAccessible = true })
}

func mark(defs []seatDef, fn func(*seatDef)) []seatDef {
	marked := make([]seatDef, len(defs))
	copy(marked, defs)
	for i := range marked {
		fn(&marked[i])
	}
	return marked
}

type rowDef struct {
	letter string
	seats  []seatDef
}

func row(letter string, groups ...[]seatDef) rowDef {
	var seats []seatDef
	for _, g := range groups {
		seats = append(seats, g...)
	}
	return rowDef{letter: letter, seats: seats}
}

// Section is a named block of the seating plan with its rows in display
// order.
type Section struct {
	Type domain.SectionType
	Rows []Row
}

type Row struct {
	Letter string
	Seats  []domain.Seat
}

func buildSection(sectionType domain.SectionType, rows ...rowDef) Section {
	section := Section{Type: sectionType, Rows: make([]Row, 0, len(rows))}

	for _, rd := range rows {
		r := Row{Letter: rd.letter, Seats: make([]domain.Seat, 0, len(rd.seats))}

		for _, sd := range rd.seats {
			r.Seats = append(r.Seats, domain.Seat{
				ID:                     domain.SeatID(sectionType, rd.letter, sd.num, sd.isBis),
				Num:                    sd.num,
				RowLetter:              rd.letter,
				Section:                sectionType,
				IsBis:                  sd.isBis,
				IsSecurity:             sd.isSecurity,
				HasRestrictedView:      sd.hasRestrictedView,
				IsWheelchairAccessible: sd.isWheelchairAccessible,
			})
		}

		section.Rows = append(section.Rows, r)
	}

	return section
}
