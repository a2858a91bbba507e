package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type MockLockRepo struct {
	mock.Mock
	domain.LockRepository
}

func (m *MockLockRepo) GetByShowAndSeats(ctx context.Context, showID string, seatIDs []string) ([]domain.SeatLock, error) {
	args := m.Called(ctx, showID, seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatLock), args.Error(1)
}

func (m *MockLockRepo) GetActiveByShow(ctx context.Context, showID string, now time.Time) ([]domain.SeatLock, error) {
	args := m.Called(ctx, showID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatLock), args.Error(1)
}

func (m *MockLockRepo) GetActiveBySession(ctx context.Context, sessionID string, now time.Time) ([]domain.SeatLock, error) {
	args := m.Called(ctx, sessionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatLock), args.Error(1)
}

func (m *MockLockRepo) AcquireSeats(ctx context.Context, showID, sessionID string, seatIDs []string, snapshot []domain.SeatLock, until time.Time) error {
	args := m.Called(ctx, showID, sessionID, seatIDs, snapshot, until)
	return args.Error(0)
}

func (m *MockLockRepo) ExtendForCheckout(ctx context.Context, sessionID, checkoutSessionID string, until, now time.Time) (int, error) {
	args := m.Called(ctx, sessionID, checkoutSessionID, until, now)
	return args.Int(0), args.Error(1)
}

func (m *MockLockRepo) Delete(ctx context.Context, showID, seatID, sessionID string) error {
	args := m.Called(ctx, showID, seatID, sessionID)
	return args.Error(0)
}

func (m *MockLockRepo) SetChildOnLap(ctx context.Context, showID, seatID, sessionID string, hasChildOnLap bool) error {
	args := m.Called(ctx, showID, seatID, sessionID, hasChildOnLap)
	return args.Error(0)
}

func (m *MockLockRepo) GetExpired(ctx context.Context, before time.Time, limit int) ([]domain.SeatLock, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatLock), args.Error(1)
}

func (m *MockLockRepo) DeleteExact(ctx context.Context, locks []domain.SeatLock) error {
	args := m.Called(ctx, locks)
	return args.Error(0)
}
