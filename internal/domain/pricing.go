package domain

import "github.com/shopspring/decimal"

// Pricer computes the price of one seat in a basket. Pricing is pluggable:
// the exact rule (flat vs per-attribute) is still under discussion with the
// theatre, so nothing outside this interface should assume a constant.
type Pricer interface {
	SeatPrice(seat Seat, lock SeatLock) decimal.Decimal
}

// FlatPricer charges the same base price for every seat, plus a flat
// surcharge when the lock carries the child-on-lap modifier.
type FlatPricer struct {
	Base           decimal.Decimal
	ChildSurcharge decimal.Decimal
}

func NewFlatPricer() FlatPricer {
	return FlatPricer{
		Base:           decimal.NewFromFloat(10.50),
		ChildSurcharge: decimal.NewFromFloat(5.00),
	}
}

func (p FlatPricer) SeatPrice(_ Seat, lock SeatLock) decimal.Decimal {
	price := p.Base
	if lock.HasChildOnLap {
		price = price.Add(p.ChildSurcharge)
	}
	return price
}
