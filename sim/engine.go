package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rustyeddy/orderdesk/internal/id"
	"github.com/rustyeddy/orderdesk/journal"
	"github.com/rustyeddy/orderdesk/market"
	"github.com/rustyeddy/orderdesk/order"
	"github.com/rustyeddy/orderdesk/venue"
)

// firstTicket keeps sim tickets out of the low range so they read like
// venue-issued identifiers in logs and journals.
const firstTicket int64 = 1001

// Engine is an in-memory venue. Market deals fill immediately at the
// current tick, protective levels are enforced on every price update.
type Engine struct {
	mu         sync.Mutex
	ticks      *market.TickStore
	positions  map[int64]*Position
	nextTicket int64
	journal    journal.Journal
}

var _ venue.Venue = (*Engine)(nil)

func NewEngine(j journal.Journal) *Engine {
	if j == nil {
		j = journal.Nop{}
	}
	return &Engine{
		ticks:      market.NewTickStore(),
		positions:  make(map[int64]*Position),
		nextTicket: firstTicket,
		journal:    j,
	}
}

func (e *Engine) Ticks() *market.TickStore { return e.ticks }

// SubmitOrder fills a market deal at the current tick: buys at ask, sells
// at bid. Requests that fail validation, or that arrive before any tick for
// the instrument, come back rejected without a ticket.
func (e *Engine) SubmitOrder(ctx context.Context, req order.Request) (order.Result, error) {
	_ = ctx // fills are immediate, nothing to cancel

	if code := req.Validate(); code != order.CodeNone {
		return order.Rejected(code), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tick, err := e.ticks.Get(req.Instrument)
	if err != nil {
		return order.Rejected(order.CodeNoPrice), nil
	}

	fillPrice := tick.Ask
	if req.Side == order.Sell {
		fillPrice = tick.Bid
	}

	openTime := tick.Time
	if openTime.IsZero() {
		openTime = time.Now()
	}

	ticket := e.nextTicket
	e.nextTicket++

	e.positions[ticket] = &Position{
		Ticket:     ticket,
		Instrument: req.Instrument,
		Side:       req.Side,
		Volume:     req.Volume,
		EntryPrice: fillPrice,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		Comment:    req.Comment,
		OpenTime:   openTime,
		Open:       true,
	}

	return order.Result{Status: order.StatusDone, Ticket: ticket}, nil
}

// PositionProfit reports unrealized P/L for open positions (longs mark at
// bid, shorts at ask) and realized P/L for closed ones.
func (e *Engine) PositionProfit(ctx context.Context, ticket int64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.positions[ticket]
	if !ok {
		return 0, fmt.Errorf("position %d: %w", ticket, venue.ErrPositionNotFound)
	}

	if !p.Open {
		return p.RealizedPL, nil
	}

	tick, err := e.ticks.Get(p.Instrument)
	if err != nil {
		return 0, fmt.Errorf("position %d: no price for %q: %w", ticket, p.Instrument, err)
	}

	mark := tick.Bid
	if p.Side == order.Sell {
		mark = tick.Ask
	}
	return p.PL(mark), nil
}

// UpdatePrice publishes a new tick and closes any position whose stop-loss
// or take-profit triggers at it. Longs mark at bid, shorts at ask.
func (e *Engine) UpdatePrice(t market.Tick) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ticks.Set(t)

	for _, p := range e.positions {
		if !p.Open || p.Instrument != t.Instrument {
			continue
		}

		mark := t.Bid
		if p.Side == order.Sell {
			mark = t.Ask
		}

		reason := ""
		switch {
		case hitStopLoss(p, mark):
			reason = "StopLoss"
		case hitTakeProfit(p, mark):
			reason = "TakeProfit"
		}
		if reason == "" {
			continue
		}

		if err := e.closePositionLocked(p, mark, t.Time, reason); err != nil {
			return err
		}
	}

	return nil
}

// ClosePosition closes an open position by hand at the current tick.
func (e *Engine) ClosePosition(ctx context.Context, ticket int64, reason string) error {
	_ = ctx

	if reason == "" {
		reason = "ManualClose"
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.positions[ticket]
	if !ok {
		return fmt.Errorf("close position: %d: %w", ticket, venue.ErrPositionNotFound)
	}
	if !p.Open {
		return fmt.Errorf("close position: %d is already closed", ticket)
	}

	tick, err := e.ticks.Get(p.Instrument)
	if err != nil {
		return fmt.Errorf("close position: no price for %q: %w", p.Instrument, err)
	}

	mark := tick.Bid
	if p.Side == order.Sell {
		mark = tick.Ask
	}

	closeTime := tick.Time
	if closeTime.IsZero() {
		closeTime = time.Now()
	}

	return e.closePositionLocked(p, mark, closeTime, reason)
}

func (e *Engine) closePositionLocked(p *Position, closePrice float64, closeTime time.Time, reason string) error {
	if closeTime.IsZero() {
		closeTime = time.Now()
	}

	p.ClosePrice = closePrice
	p.CloseTime = closeTime
	p.RealizedPL = p.PL(closePrice)
	p.Open = false

	return e.journal.RecordClose(journal.CloseRecord{
		ID:         id.New(),
		Ticket:     p.Ticket,
		Instrument: p.Instrument,
		ClosePrice: closePrice,
		Profit:     p.RealizedPL,
		Reason:     reason,
		Time:       closeTime,
	})
}

// OpenPositions returns copies of the positions still on the book.
func (e *Engine) OpenPositions() []Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Position
	for _, p := range e.positions {
		if p.Open {
			out = append(out, *p)
		}
	}
	return out
}
