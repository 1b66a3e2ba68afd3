package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-checkout-api/internal/application/checkout"
	"github.com/go-checkout-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockCheckoutSvc struct{ mock.Mock }

func (m *mockCheckoutSvc) CreateOrder(ctx context.Context, email string) (*domain.Order, error) {
	args := m.Called(ctx, email)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckoutSvc) VerifyPayment(ctx context.Context, in checkout.VerifyPaymentInput) error {
	return m.Called(ctx, in).Error(0)
}

// --- CreateOrder ---

func TestCreateOrder_MissingEmail(t *testing.T) {
	svc := &mockCheckoutSvc{}
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.CreateOrder, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_NotVerified(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("CreateOrder", mock.Anything, "a@b.com").
		Return(nil, fmt.Errorf("verify your email before ordering: %w", domain.ErrNotVerified))
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.CreateOrder, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateOrder_UpstreamFailure(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("CreateOrder", mock.Anything, "a@b.com").
		Return(nil, fmt.Errorf("razorpay 502: %w", domain.ErrUpstream))
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.CreateOrder, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateOrder_ReturnsGatewayOrder(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("CreateOrder", mock.Anything, "a@b.com").Return(&domain.Order{
		ID:       "order_1",
		Entity:   "order",
		Amount:   150,
		Currency: "INR",
		Status:   "created",
	}, nil)
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.CreateOrder, `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var order map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "order_1", order["id"])
	assert.Equal(t, float64(150), order["amount"])
	assert.Equal(t, "INR", order["currency"])
}

// --- VerifyPayment ---

const validPaymentBody = `{
	"razorpay_order_id": "order_1",
	"razorpay_payment_id": "pay_1",
	"razorpay_signature": "feedface",
	"email": "a@b.com"
}`

func TestVerifyPayment_MissingFields(t *testing.T) {
	svc := &mockCheckoutSvc{}
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.VerifyPayment, `{"razorpay_order_id":"order_1","email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything)
}

func TestVerifyPayment_SignatureMismatch(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("VerifyPayment", mock.Anything, checkout.VerifyPaymentInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "feedface",
		Email:     "a@b.com",
	}).Return(domain.ErrSignatureMismatch)
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.VerifyPayment, validPaymentBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var env PaymentEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Nil(t, env.Verified)
}

func TestVerifyPayment_DeliveryFailureStillReportsVerified(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(fmt.Errorf("payment verified but delivery failed: boom: %w", domain.ErrDeliveryFailed))
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.VerifyPayment, validPaymentBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env PaymentEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	require.NotNil(t, env.Verified)
	assert.True(t, *env.Verified)
}

func TestVerifyPayment_Success(t *testing.T) {
	svc := &mockCheckoutSvc{}
	svc.On("VerifyPayment", mock.Anything, mock.Anything).Return(nil)
	h := NewCheckoutHandler(svc, testLogger())

	rec := postJSON(t, h.VerifyPayment, validPaymentBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env PaymentEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
}
