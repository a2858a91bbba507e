package domain

import (
	"fmt"
	"strconv"
)

type SectionType string

const (
	SectionOrchestra     SectionType = "ORCHESTRA"
	SectionFirstGallery  SectionType = "FIRST_GALLERY"
	SectionSecondGallery SectionType = "SECOND_GALLERY"
	SectionThirdGallery  SectionType = "THIRD_GALLERY"
)

// Seat is a static catalog entry. The same geometry is reused across all
// shows; a seat is scoped to a show only by pairing its ID with a show ID.
type Seat struct {
	ID                     string
	Num                    int
	RowLetter              string
	Section                SectionType
	IsBis                  bool
	IsSecurity             bool
	HasRestrictedView      bool
	IsWheelchairAccessible bool
}

// SeatID derives the opaque seat identifier. It must be deterministic so the
// same physical seat always maps to the same ID across runs.
func SeatID(section SectionType, rowLetter string, num int, isBis bool) string {
	id := fmt.Sprintf("%s|%s|%d", section, rowLetter, num)
	if isBis {
		id += "|bis"
	}
	return id
}

// Label renders the seat the way it is printed on the physical ticket,
// e.g. "C12" or "C12 bis".
func (s Seat) Label() string {
	label := s.RowLetter + strconv.Itoa(s.Num)
	if s.IsBis {
		label += " bis"
	}
	return label
}

var sectionTitles = map[SectionType]string{
	SectionOrchestra:     "Orchestre",
	SectionFirstGallery:  "Première galerie",
	SectionSecondGallery: "Deuxième galerie",
	SectionThirdGallery:  "Troisième galerie",
}

func (t SectionType) Title() string {
	if title, ok := sectionTitles[t]; ok {
		return title
	}
	return string(t)
}
