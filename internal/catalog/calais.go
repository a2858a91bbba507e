package catalog

import "github.com/adrienbaron/lecoindujazz/internal/domain"

// The Calais theatre seating plan: an orchestra pit level and three
// galleries. Row letters run from the back of each level towards the stage.
// Fold-out "bis" seats sit at the aisle ends of the centre blocks.

func thirdGallerySection() Section {
	return buildSection(domain.SectionThirdGallery,
		row("F",
			asSecurity(seatsDecreasing(24, 22)), seatsDecreasing(20, 18),
			seatsDecreasing(16, 8),
			seatsIncreasing(9, 17),
			seatsIncreasing(19, 21), asSecurity(seatsIncreasing(23, 25)),
		),
		row("E",
			seatsDecreasing(26, 18),
			seatsDecreasing(16, 8),
			seatsIncreasing(9, 17),
			seatsIncreasing(19, 27),
		),
		row("D",
			seatsDecreasing(30, 18),
			seatsDecreasing(16, 8),
			seatsIncreasing(9, 17),
			seatsIncreasing(19, 31),
		),
		row("C",
			seatsDecreasing(34, 18),
			seatsDecreasing(16, 6),
			alternateSeats(5),
			seatsIncreasing(7, 17),
			seatsIncreasing(19, 35),
		),
		row("B",
			seatsDecreasing(38, 18),
			alternateSeats(14),
			seatsIncreasing(19, 39),
		),
		row("A",
			withRestrictedView(seatsDecreasing(40, 36)),
			seatsDecreasing(34, 18),
			alternateSeats(12),
			seatsIncreasing(19, 35),
			withRestrictedView(seatsIncreasing(37, 41)),
		),
	)
}

func secondGallerySection() Section {
	return buildSection(domain.SectionSecondGallery,
		row("C",
			seatsDecreasing(24, 22), seatsDecreasing(20, 18), seat(16),
			alternateSeats(14),
			seat(15), seatsIncreasing(17, 19), seatsIncreasing(21, 23),
		),
		row("B",
			seatsDecreasing(38, 16),
			alternateSeats(13),
			seatsIncreasing(15, 37),
		),
		row("A",
			withRestrictedView(seatsDecreasing(42, 38)), seatsDecreasing(36, 20), seatsDecreasing(18, 16),
			alternateSeats(13),
			seatsIncreasing(15, 17), seatsIncreasing(19, 35), withRestrictedView(seatsIncreasing(37, 41)),
		),
	)
}

func firstGallerySection() Section {
	return buildSection(domain.SectionFirstGallery,
		row("D",
			seatsDecreasing(32, 28), seatsDecreasing(26, 22), seatsDecreasing(20, 18), seat(16),
			addBisAtStart(addBisAtEnd(alternateSeats(14))),
			seat(15), seatsIncreasing(17, 19), seatsIncreasing(21, 25), seatsIncreasing(27, 31),
		),
		row("C",
			seatsDecreasing(36, 18), addBisAtEnd(seat(16)),
			addBisAtStart(addBisAtEnd(alternateSeats(12))),
			addBisAtStart(seat(15)), addBisAtEnd(seatsIncreasing(17, 35)),
		),
		row("B",
			seatsDecreasing(38, 18), addBisAtEnd(seat(16)),
			alternateSeats(11),
			addBisAtStart(seat(15)), seatsIncreasing(17, 37),
		),
		row("A",
			addBisAtStart(seatsDecreasing(40, 38)), seatsDecreasing(36, 16),
			alternateSeats(11),
			seatsIncreasing(15, 35), addBisAtEnd(seatsIncreasing(37, 39)),
		),
	)
}

func orchestraCenterWithBis() []seatDef {
	return addBisAtStart(addBisAtEnd(alternateSeats(13)))
}

func orchestraSection() Section {
	return buildSection(domain.SectionOrchestra,
		row("Q",
			addBisAtStart(addBisAtEnd(alternateSeats(10))),
		),
		row("P",
			alternateSeats(13),
		),
		row("O",
			withoutNum(alternateSeats(13), 12),
		),
		row("N",
			seatsDecreasing(22, 16),
			orchestraCenterWithBis(),
			seatsIncreasing(15, 21),
		),
		row("M",
			addBisAtEnd(seatsDecreasing(26, 16)),
			alternateSeats(14),
			addBisAtStart(seatsIncreasing(15, 25)),
		),
		row("L",
			addBisAtEnd(seatsDecreasing(26, 16)),
			orchestraCenterWithBis(),
			addBisAtStart(seatsIncreasing(15, 25)),
		),
		row("K",
			addBisAtEnd(seatsDecreasing(26, 16)),
			alternateSeats(14),
			addBisAtStart(seatsIncreasing(15, 25)),
		),
		row("J",
			addBisAtEnd(seatsDecreasing(26, 16)),
			orchestraCenterWithBis(),
			addBisAtStart(seatsIncreasing(15, 25)),
		),
		row("I",
			addBisAtEnd(seatsDecreasing(24, 16)),
			alternateSeats(14),
			addBisAtStart(seatsIncreasing(15, 23)),
		),
		row("H",
			addBisAtEnd(seatsDecreasing(22, 16)),
			orchestraCenterWithBis(),
			addBisAtStart(seatsIncreasing(15, 21)),
		),
		row("G",
			addBisAtEnd(seatsDecreasing(20, 16)),
			alternateSeats(14),
			addBisAtStart(seatsIncreasing(15, 19)),
		),
		row("F",
			addBisAtStart(seatsDecreasing(18, 16)),
			orchestraCenterWithBis(),
			addBisAtEnd(seatsIncreasing(15, 17)),
		),
		// Front row, level access from the pit doors.
		row("E",
			asWheelchairAccessible(alternateSeats(14)),
		),
	)
}

// CalaisTheatreSections returns the full plan in display order, top gallery
// first.
func CalaisTheatreSections() []Section {
	return []Section{
		thirdGallerySection(),
		secondGallerySection(),
		firstGallerySection(),
		orchestraSection(),
	}
}
