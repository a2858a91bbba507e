package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type MockPurchaseRepo struct {
	mock.Mock
	domain.PurchaseRepository
}

func (m *MockPurchaseRepo) RegisterPurchase(ctx context.Context, checkoutSessionID string, customer domain.Customer) ([]domain.PurchasedSeat, error) {
	args := m.Called(ctx, checkoutSessionID, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchasedSeat), args.Error(1)
}

func (m *MockPurchaseRepo) GetSeatsByShow(ctx context.Context, showID string) ([]domain.PurchasedSeat, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchasedSeat), args.Error(1)
}

func (m *MockPurchaseRepo) SetSeatStatuses(ctx context.Context, showID string, changes []domain.SeatStatusChange, purchaseID string, now time.Time) error {
	args := m.Called(ctx, showID, changes, purchaseID, now)
	return args.Error(0)
}
