// Package remote talks to an order-execution gateway over JSON/HTTP.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rustyeddy/orderdesk/order"
	"github.com/rustyeddy/orderdesk/venue"
)

const defaultTimeout = 30 * time.Second

// Client implements venue.Venue against a remote gateway. It performs the
// same local validation as the sim so obviously bad requests never leave
// the process; everything else is delegated and the gateway's verdict is
// passed through untouched.
type Client struct {
	rc *resty.Client
}

var _ venue.Venue = (*Client)(nil)

func NewClient(baseURL, token string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{rc: rc}
}

type orderPayload struct {
	Instrument string  `json:"instrument"`
	Side       string  `json:"side"`
	Volume     float64 `json:"volume"`
	Price      float64 `json:"price,omitempty"`
	StopLoss   float64 `json:"stop_loss,omitempty"`
	TakeProfit float64 `json:"take_profit,omitempty"`
	Comment    string  `json:"comment,omitempty"`
}

type orderResponse struct {
	Status string `json:"status"`
	Ticket int64  `json:"ticket"`
	Code   int    `json:"code"`
}

type positionResponse struct {
	Ticket int64   `json:"ticket"`
	Profit float64 `json:"profit"`
}

func (c *Client) SubmitOrder(ctx context.Context, req order.Request) (order.Result, error) {
	if code := req.Validate(); code != order.CodeNone {
		return order.Rejected(code), nil
	}

	payload := orderPayload{
		Instrument: req.Instrument,
		Side:       req.Side.String(),
		Volume:     req.Volume,
		Price:      req.Price,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		Comment:    req.Comment,
	}

	var out orderResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		SetError(&out).
		Post("/v1/orders")
	if err != nil {
		return order.Result{}, fmt.Errorf("submit order: %w", err)
	}

	if resp.IsError() && out.Status == "" {
		return order.Result{}, fmt.Errorf("submit order: gateway returned %s", resp.Status())
	}

	return order.Result{
		Status: parseStatus(out.Status),
		Ticket: out.Ticket,
		Code:   order.Code(out.Code),
	}, nil
}

func (c *Client) PositionProfit(ctx context.Context, ticket int64) (float64, error) {
	var out positionResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/v1/positions/%d", ticket))
	if err != nil {
		return 0, fmt.Errorf("position %d: %w", ticket, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return 0, fmt.Errorf("position %d: %w", ticket, venue.ErrPositionNotFound)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("position %d: gateway returned %s", ticket, resp.Status())
	}

	return out.Profit, nil
}

func parseStatus(s string) order.Status {
	switch s {
	case "DONE":
		return order.StatusDone
	case "REJECTED":
		return order.StatusRejected
	}
	return order.StatusFailed
}
