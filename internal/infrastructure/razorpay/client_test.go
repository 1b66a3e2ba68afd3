package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-checkout-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var in CreateOrderInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(150), in.Amount)
		assert.Equal(t, "INR", in.Currency)
		assert.Equal(t, "abc123", in.Receipt)
		assert.Equal(t, "a@b.com", in.Notes["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         "order_test_1",
			"entity":     "order",
			"amount":     in.Amount,
			"amount_due": in.Amount,
			"currency":   in.Currency,
			"receipt":    in.Receipt,
			"status":     "created",
			"notes":      in.Notes,
			"created_at": 1700000000,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rzp_test_key", "rzp_test_secret")
	order, err := c.CreateOrder(context.Background(), CreateOrderInput{
		Amount:   150,
		Currency: "INR",
		Receipt:  "abc123",
		Notes:    map[string]string{"email": "a@b.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, "order_test_1", order.ID)
	assert.Equal(t, int64(150), order.Amount)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, "abc123", order.Receipt)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", "creds")
	_, err := c.CreateOrder(context.Background(), CreateOrderInput{Amount: 150, Currency: "INR"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestCreateOrder_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "k", "s")
	_, err := c.CreateOrder(context.Background(), CreateOrderInput{Amount: 150, Currency: "INR"})

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
