package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/orderdesk/order"
	"github.com/rustyeddy/orderdesk/venue"
)

func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/orders", func(w http.ResponseWriter, r *http.Request) {
		var p orderPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if p.Instrument == "GBP_USD" {
			// Venue-side rejection, delivered as a normal payload.
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(orderResponse{Status: "REJECTED", Code: int(order.CodeRejected)})
			return
		}

		json.NewEncoder(w).Encode(orderResponse{Status: "DONE", Ticket: 1001})
	})

	mux.HandleFunc("GET /v1/positions/1001", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(positionResponse{Ticket: 1001, Profit: 12.5})
	})

	mux.HandleFunc("GET /v1/positions/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitOrderDone(t *testing.T) {
	t.Parallel()

	srv := newTestGateway(t)
	c := NewClient(srv.URL, "test-token")

	res, err := c.SubmitOrder(context.Background(), order.New("EUR_USD", order.Buy, 1.0, 1.0851, 0, 0, "api test"))
	assert.NoError(t, err)

	ticket, ok := res.Check()
	assert.True(t, ok)
	assert.Equal(t, int64(1001), ticket)
}

func TestSubmitOrderVenueRejection(t *testing.T) {
	t.Parallel()

	srv := newTestGateway(t)
	c := NewClient(srv.URL, "test-token")

	res, err := c.SubmitOrder(context.Background(), order.New("GBP_USD", order.Sell, 1.0, 1.2500, 0, 0, ""))
	assert.NoError(t, err)
	assert.Equal(t, order.StatusRejected, res.Status)
	assert.Equal(t, order.CodeRejected, res.Code)

	_, ok := res.Check()
	assert.False(t, ok)
}

func TestSubmitOrderLocalRejectionSkipsGateway(t *testing.T) {
	t.Parallel()

	// No server at this address; a local rejection must not dial out.
	c := NewClient("http://127.0.0.1:1", "test-token")

	res, err := c.SubmitOrder(context.Background(), order.New("EUR_USD", order.Buy, -1, 0, 0, 0, ""))
	assert.NoError(t, err)
	assert.Equal(t, order.StatusRejected, res.Status)
	assert.Equal(t, order.CodeInvalidVolume, res.Code)
}

func TestSubmitOrderTransportError(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1", "test-token")

	_, err := c.SubmitOrder(context.Background(), order.New("EUR_USD", order.Buy, 1, 0, 0, 0, ""))
	assert.Error(t, err)
}

func TestPositionProfit(t *testing.T) {
	t.Parallel()

	srv := newTestGateway(t)
	c := NewClient(srv.URL, "test-token")

	pl, err := c.PositionProfit(context.Background(), 1001)
	assert.NoError(t, err)
	assert.Equal(t, 12.5, pl)

	_, err = c.PositionProfit(context.Background(), 9999)
	assert.True(t, errors.Is(err, venue.ErrPositionNotFound))

	pl, ok := venue.Profit(context.Background(), c, 9999)
	assert.False(t, ok)
	assert.Zero(t, pl)
}
