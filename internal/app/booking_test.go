package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
	"github.com/adrienbaron/lecoindujazz/internal/mocks"
)

const testShowID = "gala-2024-06-21"

type BookingTestSuite struct {
	suite.Suite
	app          *Application
	lockRepo     *mocks.MockLockRepo
	purchaseRepo *mocks.MockPurchaseRepo
}

func (s *BookingTestSuite) SetupTest() {
	s.lockRepo = new(mocks.MockLockRepo)
	s.purchaseRepo = new(mocks.MockPurchaseRepo)

	s.app = newTestApplication(func(a *Application) {
		a.lockRepo = s.lockRepo
		a.purchaseRepo = s.purchaseRepo
	})
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingTestSuite))
}

func (s *BookingTestSuite) TestSubmitSeatSelection() {
	otherSessionLock := func(seatID string, until time.Time) domain.SeatLock {
		return domain.SeatLock{
			ShowID:      testShowID,
			SeatID:      seatID,
			SessionID:   "someone-else",
			LockedUntil: until,
		}
	}

	tests := []struct {
		name           string
		showID         string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantSeats      []string
	}{
		{
			name:       "should fail when show does not exist",
			showID:     "gala-1999-01-01",
			body:       api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:           "should fail when seat list is empty",
			showID:         testShowID,
			body:           api.SeatSelectionRequest{SeatIds: []string{}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must contain at least 1 item(s)",
		},
		{
			name:       "should fail when a seat id is unknown",
			showID:     testShowID,
			body:       api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|Z|99"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:           "should fail when a seat is a security seat",
			showID:         testShowID,
			body:           api.SeatSelectionRequest{SeatIds: []string{"THIRD_GALLERY|F|24"}},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrSeatNotForSale.Error(),
		},
		{
			name:   "should report the contested seat when another session holds an active lock",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12", "ORCHESTRA|P|10"}},
			setupMocks: func() {
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, []string{"ORCHESTRA|P|12", "ORCHESTRA|P|10"}).
					Return([]domain.SeatLock{
						otherSessionLock("ORCHESTRA|P|12", time.Now().Add(10*time.Minute)),
					}, nil)
				s.purchaseRepo.On("GetSeatsByShow", mock.Anything, testShowID).
					Return([]domain.PurchasedSeat{}, nil)
			},
			wantStatus: http.StatusConflict,
			wantSeats:  []string{"ORCHESTRA|P|12"},
		},
		{
			name:   "should report the contested seat when it is already purchased",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12", "ORCHESTRA|P|10"}},
			setupMocks: func() {
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, mock.Anything).
					Return([]domain.SeatLock{}, nil)
				s.purchaseRepo.On("GetSeatsByShow", mock.Anything, testShowID).
					Return([]domain.PurchasedSeat{
						{ShowID: testShowID, SeatID: "ORCHESTRA|P|10", PurchaseID: "cs_test_1"},
					}, nil)
			},
			wantStatus: http.StatusConflict,
			wantSeats:  []string{"ORCHESTRA|P|10"},
		},
		{
			name:   "should acquire seats when a foreign lock has expired",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12"}},
			setupMocks: func() {
				expired := otherSessionLock("ORCHESTRA|P|12", time.Now().Add(-time.Minute))
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, []string{"ORCHESTRA|P|12"}).
					Return([]domain.SeatLock{expired}, nil)
				s.purchaseRepo.On("GetSeatsByShow", mock.Anything, testShowID).
					Return([]domain.PurchasedSeat{}, nil)
				s.lockRepo.On("AcquireSeats", mock.Anything, testShowID, mock.Anything, []string{"ORCHESTRA|P|12"}, []domain.SeatLock{expired}, mock.Anything).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "should fail the whole batch when a concurrent writer wins the race",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12", "ORCHESTRA|P|10"}},
			setupMocks: func() {
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, mock.Anything).
					Return([]domain.SeatLock{}, nil)
				s.purchaseRepo.On("GetSeatsByShow", mock.Anything, testShowID).
					Return([]domain.PurchasedSeat{}, nil)
				s.lockRepo.On("AcquireSeats", mock.Anything, testShowID, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrSeatConflict)
			},
			wantStatus: http.StatusConflict,
			wantSeats:  []string{"ORCHESTRA|P|12", "ORCHESTRA|P|10"},
		},
		{
			name:   "should fail when reading the lock snapshot errors",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12"}},
			setupMocks: func() {
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, mock.Anything).
					Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:   "should lock requested seats for the session",
			showID: testShowID,
			body:   api.SeatSelectionRequest{SeatIds: []string{"ORCHESTRA|P|12", "ORCHESTRA|Q|9|bis"}},
			setupMocks: func() {
				s.lockRepo.On("GetByShowAndSeats", mock.Anything, testShowID, []string{"ORCHESTRA|P|12", "ORCHESTRA|Q|9|bis"}).
					Return([]domain.SeatLock{}, nil)
				s.purchaseRepo.On("GetSeatsByShow", mock.Anything, testShowID).
					Return([]domain.PurchasedSeat{}, nil)
				s.lockRepo.On("AcquireSeats", mock.Anything, testShowID, mock.Anything, []string{"ORCHESTRA|P|12", "ORCHESTRA|Q|9|bis"}, []domain.SeatLock{}, mock.Anything).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.lockRepo.AssertExpectations(s.T())
			defer s.purchaseRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/shows/%s/seats", tt.showID), tt.body)
			r = withShowID(r, tt.showID)
			r, _ = setupTestSession(s.T(), s.app, r)

			s.app.SubmitSeatSelectionHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response api.SeatSelectionResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal(tt.showID, response.ShowId)
				s.True(response.LockedUntil.After(time.Now().Add(14 * time.Minute)))
			}

			if tt.wantStatus == http.StatusConflict && tt.wantSeats != nil {
				var errorResp api.ErrorResponse
				err := json.NewDecoder(w.Body).Decode(&errorResp)
				s.Require().NoError(err, "Failed to decode error response")

				s.ElementsMatch(tt.wantSeats, errorResp.Seats)
				return
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
