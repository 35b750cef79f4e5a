// sim/triggers.go
package sim

import "github.com/rustyeddy/orderdesk/order"

func hitStopLoss(p *Position, mark float64) bool {
	if p.StopLoss == 0 {
		return false
	}
	if p.Side == order.Buy {
		return mark <= p.StopLoss
	}
	return mark >= p.StopLoss
}

func hitTakeProfit(p *Position, mark float64) bool {
	if p.TakeProfit == 0 {
		return false
	}
	if p.Side == order.Buy {
		return mark >= p.TakeProfit
	}
	return mark <= p.TakeProfit
}
