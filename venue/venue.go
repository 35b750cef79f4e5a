package venue

import (
	"context"
	"errors"

	"github.com/rustyeddy/orderdesk/order"
)

// ErrPositionNotFound is returned by PositionProfit for a ticket the venue
// does not track.
var ErrPositionNotFound = errors.New("position not found")

// Venue is the external execution boundary. Implementations are injected
// rather than ambient so callers can substitute a test double.
//
// SubmitOrder is synchronous and blocking; it does not retry and propagates
// whatever result the venue produced, including a failure status with no
// ticket. A non-nil error means the request never reached a decision
// (transport failure), not that the venue rejected it.
type Venue interface {
	SubmitOrder(ctx context.Context, req order.Request) (order.Result, error)
	PositionProfit(ctx context.Context, ticket int64) (float64, error)
}

// Profit is the boolean-style position lookup: the profit and true when
// the venue tracks the ticket, zero and false otherwise.
func Profit(ctx context.Context, v Venue, ticket int64) (float64, bool) {
	pl, err := v.PositionProfit(ctx, ticket)
	if err != nil {
		return 0, false
	}
	return pl, true
}
