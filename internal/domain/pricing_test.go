package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFlatPricer(t *testing.T) {
	pricer := NewFlatPricer()

	seat := Seat{ID: "ORCHESTRA|P|12", Num: 12, RowLetter: "P", Section: SectionOrchestra}

	tests := []struct {
		name string
		lock SeatLock
		want decimal.Decimal
	}{
		{
			name: "base price",
			lock: SeatLock{SeatID: seat.ID},
			want: decimal.NewFromFloat(10.50),
		},
		{
			name: "child on lap adds the surcharge",
			lock: SeatLock{SeatID: seat.ID, HasChildOnLap: true},
			want: decimal.NewFromFloat(15.50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricer.SeatPrice(seat, tt.lock)
			if !got.Equal(tt.want) {
				t.Errorf("SeatPrice = %s, want %s", got, tt.want)
			}
		})
	}
}
