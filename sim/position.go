package sim

import (
	"time"

	"github.com/rustyeddy/orderdesk/order"
)

type Position struct {
	Ticket     int64
	Instrument string
	Side       order.Side
	Volume     float64
	EntryPrice float64
	OpenTime   time.Time

	StopLoss   float64 // 0 = unset
	TakeProfit float64 // 0 = unset
	Comment    string

	// Realized
	ClosePrice float64
	CloseTime  time.Time
	RealizedPL float64
	Open       bool
}

// PL is the position's profit at the given mark, in quote currency.
func (p *Position) PL(mark float64) float64 {
	if p.Side == order.Buy {
		return p.Volume * (mark - p.EntryPrice)
	}
	return p.Volume * (p.EntryPrice - mark)
}
