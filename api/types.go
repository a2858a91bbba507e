// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	Seats     []string  `json:"seats,omitempty"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

type ShowsResponse struct {
	Shows []Show `json:"shows"`
}

type Show struct {
	Id    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type SeatMapResponse struct {
	ShowId   string        `json:"showId"`
	Title    string        `json:"title"`
	Date     time.Time     `json:"date"`
	Sections []SeatSection `json:"sections"`
}

type SeatSection struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Rows  []SeatRow `json:"rows"`
}

type SeatRow struct {
	Letter string `json:"letter"`
	Seats  []Seat `json:"seats"`
}

type Seat struct {
	Id                     string  `json:"id"`
	Num                    int     `json:"num"`
	IsBis                  bool    `json:"isBis,omitempty"`
	HasRestrictedView      bool    `json:"hasRestrictedView,omitempty"`
	IsWheelchairAccessible bool    `json:"isWheelchairAccessible,omitempty"`
	Available              bool    `json:"available"`
	UnavailableReason      *string `json:"unavailableReason,omitempty"`
}

type SeatSelectionRequest struct {
	SeatIds []string `json:"seatIds" validate:"required,min=1,dive,required"`
}

type SeatSelectionResponse struct {
	ShowId      string    `json:"showId"`
	SeatIds     []string  `json:"seatIds"`
	LockedUntil time.Time `json:"lockedUntil"`
}

type BasketResponse struct {
	Shows []BasketShow    `json:"shows"`
	Total decimal.Decimal `json:"total"`
}

type BasketShow struct {
	ShowId string       `json:"showId"`
	Title  string       `json:"title"`
	Date   time.Time    `json:"date"`
	Seats  []BasketSeat `json:"seats"`
}

type BasketSeat struct {
	SeatId        string          `json:"seatId"`
	Section       string          `json:"section"`
	Label         string          `json:"label"`
	Price         decimal.Decimal `json:"price"`
	HasChildOnLap bool            `json:"hasChildOnLap"`
	LockedUntil   time.Time       `json:"lockedUntil"`
}

type BasketSeatRequest struct {
	ShowId string `json:"showId" validate:"required"`
	SeatId string `json:"seatId" validate:"required"`
}

type ChildOnLapRequest struct {
	ShowId        string `json:"showId" validate:"required"`
	SeatId        string `json:"seatId" validate:"required"`
	HasChildOnLap bool   `json:"hasChildOnLap"`
}

type CheckoutSessionResponse struct {
	RedirectUrl string `json:"redirectUrl"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminSeatStatusRequest struct {
	Seats []AdminSeatStatus `json:"seats" validate:"required,min=1,dive"`
}

type AdminSeatStatus struct {
	SeatId         string `json:"seatId" validate:"required"`
	ExpectedStatus string `json:"expectedStatus" validate:"required,seat_status"`
}
