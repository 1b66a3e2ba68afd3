package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-checkout-api/internal/application/checkout"
	"github.com/go-checkout-api/internal/domain"
	"github.com/go-checkout-api/internal/pkg/validate"
)

// checkoutService is the subset of the checkout application service the
// handler needs.
type checkoutService interface {
	CreateOrder(ctx context.Context, email string) (*domain.Order, error)
	VerifyPayment(ctx context.Context, in checkout.VerifyPaymentInput) error
}

// CheckoutHandler handles order creation and payment verification.
type CheckoutHandler struct {
	svc    checkoutService
	logger *slog.Logger
}

func NewCheckoutHandler(svc checkoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, logger: logger.With("component", "checkout_handler")}
}

type createOrderRequest struct {
	Email string `json:"email" validate:"required"`
}

// POST /api/create-order
func (h *CheckoutHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.Email)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "create order", "email", req.Email, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	// The gateway order is returned verbatim so the storefront can hand it
	// straight to Razorpay Checkout.
	writeJSON(w, http.StatusOK, order)
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// POST /api/verify-payment
func (h *CheckoutHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, PaymentEnvelope{Status: "error", Message: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, PaymentEnvelope{Status: "error", Message: err.Error()})
		return
	}

	err := h.svc.VerifyPayment(r.Context(), checkout.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Email:     req.Email,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "verify payment",
			"order_id", req.OrderID, "payment_id", req.PaymentID, "error", err)

		if errors.Is(err, domain.ErrDeliveryFailed) {
			// The payment authenticated; only delivery failed. Say so, or the
			// buyer will think their money vanished.
			verified := true
			writeJSON(w, http.StatusInternalServerError, PaymentEnvelope{
				Status:   "error",
				Message:  "payment verified, but we could not send your prints; please contact support",
				Verified: &verified,
			})
			return
		}
		writeJSON(w, statusFor(err), PaymentEnvelope{Status: "error", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, PaymentEnvelope{Status: "success", Message: "Payment verified. Your prints are on their way!"})
}
