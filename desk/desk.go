// Package desk ties a venue and a journal together behind the one flow a
// caller actually runs: build a request, submit it, classify the result.
package desk

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/orderdesk/internal/id"
	"github.com/rustyeddy/orderdesk/journal"
	"github.com/rustyeddy/orderdesk/order"
	"github.com/rustyeddy/orderdesk/venue"
)

type Desk struct {
	venue   venue.Venue
	journal journal.Journal
	log     *logrus.Logger
}

func New(v venue.Venue, j journal.Journal, log *logrus.Logger) *Desk {
	if j == nil {
		j = journal.Nop{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &Desk{venue: v, journal: j, log: log}
}

// Submit hands the request to the venue, journals the outcome, and returns
// the venue's result. The error return is reserved for transport and
// journal failures; a rejection is a normal result, not an error.
func (d *Desk) Submit(ctx context.Context, req order.Request) (order.Result, error) {
	res, err := d.venue.SubmitOrder(ctx, req)
	if err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"instrument": req.Instrument,
			"side":       req.Side.String(),
			"volume":     req.Volume,
		}).Error("order submission failed")
		return order.Result{}, fmt.Errorf("submit %s %s: %w", req.Side, req.Instrument, err)
	}

	if jerr := d.journal.RecordSubmission(journal.SubmissionRecord{
		ID:         id.New(),
		Ticket:     res.Ticket,
		Instrument: req.Instrument,
		Side:       req.Side.String(),
		Volume:     req.Volume,
		Price:      req.Price,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		Comment:    req.Comment,
		Status:     res.Status.String(),
		Code:       int(res.Code),
		Time:       time.Now().UTC(),
	}); jerr != nil {
		return res, fmt.Errorf("journal submission: %w", jerr)
	}

	if ticket, ok := res.Check(); ok {
		d.log.WithFields(logrus.Fields{
			"ticket":     ticket,
			"instrument": req.Instrument,
			"side":       req.Side.String(),
			"volume":     req.Volume,
		}).Info("order filled")
	} else {
		d.log.WithFields(logrus.Fields{
			"instrument": req.Instrument,
			"status":     res.Status.String(),
			"code":       res.Code.String(),
		}).Warn("order not filled")
	}

	return res, nil
}

// Profit looks up a position's P/L by ticket. False means the venue does
// not track the ticket (or could not price it right now).
func (d *Desk) Profit(ctx context.Context, ticket int64) (float64, bool) {
	pl, ok := venue.Profit(ctx, d.venue, ticket)
	if !ok {
		d.log.WithField("ticket", ticket).Warn("position lookup failed")
	}
	return pl, ok
}
