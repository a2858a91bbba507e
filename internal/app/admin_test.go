package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
	"github.com/adrienbaron/lecoindujazz/internal/mocks"
)

type AdminTestSuite struct {
	suite.Suite
	app          *Application
	purchaseRepo *mocks.MockPurchaseRepo
}

func (s *AdminTestSuite) SetupTest() {
	s.purchaseRepo = new(mocks.MockPurchaseRepo)

	s.app = newTestApplication(func(a *Application) {
		a.purchaseRepo = s.purchaseRepo
		a.config.admin.password = "s3cret"
	})
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (s *AdminTestSuite) TestAdminLogin() {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "should fail with the wrong password",
			body:       api.AdminLoginRequest{Password: "nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "should set the admin flag with the right password",
			body:       api.AdminLoginRequest{Password: "s3cret"},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			w, r := executeRequest(s.T(), http.MethodPost, "/admin/login", tt.body)
			r, _ = setupTestSession(s.T(), s.app, r)

			s.app.AdminLoginHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusNoContent {
				s.True(s.app.sessionManager.GetBool(r.Context(), SessionKeyAdmin.String()))
			}
		})
	}
}

func (s *AdminTestSuite) TestAdminLoginRefusedWhenPasswordUnset() {
	s.app.config.admin.password = ""

	w, r := executeRequest(s.T(), http.MethodPost, "/admin/login", api.AdminLoginRequest{Password: ""})
	r, _ = setupTestSession(s.T(), s.app, r)

	s.app.AdminLoginHandler(w, r)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *AdminTestSuite) TestAdminLogout() {
	w, r := executeRequest(s.T(), http.MethodPost, "/admin/logout", nil)
	r, _ = setupTestSession(s.T(), s.app, r)
	s.app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), true)

	s.app.AdminLogoutHandler(w, r)

	s.Equal(http.StatusNoContent, w.Code)
	s.False(s.app.sessionManager.GetBool(r.Context(), SessionKeyAdmin.String()))
}

func (s *AdminTestSuite) TestAdminSetSeatStatuses() {
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
			name:   "should fail when show does not exist",
			showID: "gala-1999-01-01",
			body: api.AdminSeatStatusRequest{Seats: []api.AdminSeatStatus{
				{SeatId: "ORCHESTRA|P|12", ExpectedStatus: "available"},
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "should fail when a status is not a known value",
			showID: testShowID,
			body: api.AdminSeatStatusRequest{Seats: []api.AdminSeatStatus{
				{SeatId: "ORCHESTRA|P|12", ExpectedStatus: "reserved"},
			}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of: available, locked, purchased",
		},
		{
			name:   "should fail when a seat id is unknown",
			showID: testShowID,
			body: api.AdminSeatStatusRequest{Seats: []api.AdminSeatStatus{
				{SeatId: "ORCHESTRA|Z|99", ExpectedStatus: "available"},
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "should report contested seats when the displayed statuses are stale",
			showID: testShowID,
			body: api.AdminSeatStatusRequest{Seats: []api.AdminSeatStatus{
				{SeatId: "ORCHESTRA|P|12", ExpectedStatus: "available"},
				{SeatId: "ORCHESTRA|P|10", ExpectedStatus: "locked"},
			}},
			setupMocks: func() {
				s.purchaseRepo.On("SetSeatStatuses", mock.Anything, testShowID, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.StaleSeatStatusError{SeatIDs: []string{"ORCHESTRA|P|10"}})
			},
			wantStatus: http.StatusConflict,
			wantSeats:  []string{"ORCHESTRA|P|10"},
		},
		{
			name:   "should apply the batch under a synthetic admin purchase",
			showID: testShowID,
			body: api.AdminSeatStatusRequest{Seats: []api.AdminSeatStatus{
				{SeatId: "ORCHESTRA|P|12", ExpectedStatus: "available"},
				{SeatId: "ORCHESTRA|P|10", ExpectedStatus: "purchased"},
			}},
			setupMocks: func() {
				changes := []domain.SeatStatusChange{
					{SeatID: "ORCHESTRA|P|12", Expected: domain.SeatStatusAvailable},
					{SeatID: "ORCHESTRA|P|10", Expected: domain.SeatStatusPurchased},
				}

				s.purchaseRepo.On("SetSeatStatuses", mock.Anything, testShowID, changes,
					mock.MatchedBy(func(purchaseID string) bool {
						return strings.HasPrefix(purchaseID, "admin-")
					}), mock.Anything).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.purchaseRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/admin/shows/%s/seats", tt.showID), tt.body)
			r = withShowID(r, tt.showID)

			s.app.AdminSetSeatStatusesHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

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
