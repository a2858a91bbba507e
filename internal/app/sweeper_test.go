package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
	"github.com/adrienbaron/lecoindujazz/internal/mocks"
)

type SweeperTestSuite struct {
	suite.Suite
	app      *Application
	lockRepo *mocks.MockLockRepo
}

func (s *SweeperTestSuite) SetupTest() {
	s.lockRepo = new(mocks.MockLockRepo)

	s.app = newTestApplication(func(a *Application) {
		a.lockRepo = s.lockRepo
	})
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) TestSweepOnce() {
	expired := []domain.SeatLock{
		{ShowID: testShowID, SeatID: "ORCHESTRA|P|12", SessionID: "x", LockedUntil: time.Now().Add(-time.Hour)},
	}

	s.lockRepo.On("GetExpired", mock.Anything, mock.Anything, sweepBatchSize).
		Return(expired, nil).Once()
	s.lockRepo.On("DeleteExact", mock.Anything, expired).
		Return(nil).Once()

	s.app.sweepOnce(context.Background())

	s.lockRepo.AssertExpectations(s.T())
}

func (s *SweeperTestSuite) TestSweepOnceStopsWhenNothingExpired() {
	s.lockRepo.On("GetExpired", mock.Anything, mock.Anything, sweepBatchSize).
		Return([]domain.SeatLock{}, nil).Once()

	s.app.sweepOnce(context.Background())

	s.lockRepo.AssertExpectations(s.T())
}

func (s *SweeperTestSuite) TestSweepOnceDrainsFullBatches() {
	fullBatch := make([]domain.SeatLock, sweepBatchSize)
	for i := range fullBatch {
		fullBatch[i] = domain.SeatLock{
			ShowID:      testShowID,
			SeatID:      fmt.Sprintf("ORCHESTRA|P|%d", i),
			SessionID:   "x",
			LockedUntil: time.Now().Add(-time.Hour),
		}
	}

	s.lockRepo.On("GetExpired", mock.Anything, mock.Anything, sweepBatchSize).
		Return(fullBatch, nil).Once()
	s.lockRepo.On("DeleteExact", mock.Anything, fullBatch).
		Return(nil).Once()
	s.lockRepo.On("GetExpired", mock.Anything, mock.Anything, sweepBatchSize).
		Return([]domain.SeatLock{}, nil).Once()

	s.app.sweepOnce(context.Background())

	s.lockRepo.AssertExpectations(s.T())
}
