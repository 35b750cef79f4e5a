package order

import (
	"fmt"

	"github.com/rustyeddy/orderdesk/market"
)

// Side is the direction of a market deal.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide converts a string such as "buy" or "SELL" to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy", "BUY", "Buy":
		return Buy, nil
	case "sell", "SELL", "Sell":
		return Sell, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// Action tags what kind of deal a request describes. Market deals are the
// only supported action.
type Action int

const (
	ActionMarket Action = iota
)

func (a Action) String() string {
	if a == ActionMarket {
		return "MARKET"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Request describes a desired market operation. It is built fresh per call
// and discarded after submission; nothing retains it.
type Request struct {
	Instrument string
	Side       Side
	Volume     float64 // lots, must be positive
	Price      float64 // requested price, advisory for market deals
	StopLoss   float64 // 0 = unset
	TakeProfit float64 // 0 = unset
	Comment    string
	Action     Action
}

// New assembles a market-deal Request echoing the given parameters.
func New(instrument string, side Side, volume, price, stopLoss, takeProfit float64, comment string) Request {
	return Request{
		Instrument: instrument,
		Side:       side,
		Volume:     volume,
		Price:      price,
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		Comment:    comment,
		Action:     ActionMarket,
	}
}

// Validate screens a request before it is handed to a venue. Requests that
// fail validation are rejected locally and never submitted.
//
// Policy: a non-positive volume, an unknown side, or an instrument missing
// from the tradable set is a rejection, not a pass-through.
func (r Request) Validate() Code {
	if r.Volume <= 0 {
		return CodeInvalidVolume
	}
	if r.Side != Buy && r.Side != Sell {
		return CodeUnknownSide
	}
	if !market.Known(r.Instrument) {
		return CodeUnknownInstrument
	}
	return CodeNone
}
