package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-checkout-api/internal/domain"
	"github.com/go-checkout-api/internal/infrastructure/razorpay"
	"github.com/go-checkout-api/internal/metrics"
	"github.com/go-checkout-api/internal/pkg/receipt"
	"github.com/go-checkout-api/internal/pkg/signature"
)

// SessionStore is the slice of the OTP store this service needs.
type SessionStore interface {
	Get(ctx context.Context, email string) (*domain.OTPSession, error)
	Delete(ctx context.Context, email string) error
}

// OrderGateway creates payment orders with the gateway.
type OrderGateway interface {
	CreateOrder(ctx context.Context, in razorpay.CreateOrderInput) (*domain.Order, error)
}

// Mailer is the slice of the mail infrastructure this service needs.
type Mailer interface {
	SendEmail(to, subject, htmlBody string, attachments ...string) error
}

// Bundle describes the fixed deliverable: Count files named
// <Prefix><NN><Ext> under Dir, NN zero-padded from 01.
type Bundle struct {
	Dir    string
	Prefix string
	Ext    string
	Count  int
}

// Paths returns the attachment paths in order.
func (b Bundle) Paths() []string {
	paths := make([]string, 0, b.Count)
	for i := 1; i <= b.Count; i++ {
		paths = append(paths, filepath.Join(b.Dir, fmt.Sprintf("%s%02d%s", b.Prefix, i, b.Ext)))
	}
	return paths
}

// VerifyPaymentInput carries the gateway callback fields.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	Email     string
}

type Service interface {
	// CreateOrder creates a gateway order for the fixed-price bundle, gated
	// on a verified OTP session for email.
	CreateOrder(ctx context.Context, email string) (*domain.Order, error)
	// VerifyPayment authenticates a payment callback via HMAC and, on
	// success, emails the bundle and retires the OTP session.
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) error
}

type ServiceDeps struct {
	Store     SessionStore
	Gateway   OrderGateway
	Mailer    Mailer
	KeySecret string // gateway key secret, doubles as the HMAC key
	Amount    int64  // minor units
	Currency  string
	Bundle    Bundle
}

type service struct {
	store     SessionStore
	gateway   OrderGateway
	mailer    Mailer
	keySecret string
	amount    int64
	currency  string
	bundle    Bundle
}

func NewService(deps ServiceDeps) Service {
	return &service{
		store:     deps.Store,
		gateway:   deps.Gateway,
		mailer:    deps.Mailer,
		keySecret: deps.KeySecret,
		amount:    deps.Amount,
		currency:  deps.Currency,
		bundle:    deps.Bundle,
	}
}

func (s *service) CreateOrder(ctx context.Context, email string) (*domain.Order, error) {
	sess, err := s.store.Get(ctx, email)
	if err != nil || !sess.Verified {
		metrics.OrdersCreatedTotal.WithLabelValues("not_verified").Inc()
		return nil, fmt.Errorf("verify your email before ordering: %w", domain.ErrNotVerified)
	}

	rcpt, err := receipt.New()
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.CreateOrderInput{
		Amount:   s.amount,
		Currency: s.currency,
		Receipt:  rcpt,
		Notes:    map[string]string{"email": email},
	})
	if err != nil {
		// Session retained: the client may retry without re-verifying.
		metrics.OrdersCreatedTotal.WithLabelValues("upstream_error").Inc()
		return nil, err
	}
	metrics.OrdersCreatedTotal.WithLabelValues("ok").Inc()
	return order, nil
}

func (s *service) VerifyPayment(ctx context.Context, in VerifyPaymentInput) error {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" || in.Email == "" {
		return fmt.Errorf("missing payment verification fields: %w", domain.ErrInvalidInput)
	}

	// The signature is the sole trust boundary; the order is deliberately not
	// looked up locally, matching the gateway's callback-verification contract.
	if !signature.Verify(in.OrderID, in.PaymentID, s.keySecret, in.Signature) {
		metrics.PaymentsVerifiedTotal.WithLabelValues("signature_mismatch").Inc()
		return domain.ErrSignatureMismatch
	}

	if err := s.mailer.SendEmail(in.Email, deliverySubject, deliveryBody, s.bundle.Paths()...); err != nil {
		metrics.PaymentsVerifiedTotal.WithLabelValues("delivery_failed").Inc()
		return fmt.Errorf("payment verified but delivery failed: %v: %w", err, domain.ErrDeliveryFailed)
	}

	// Terminal cleanup: the purchase flow for this email is complete.
	if err := s.store.Delete(ctx, in.Email); err != nil {
		slog.Warn("failed to delete otp session after delivery", "email", in.Email, "err", err)
	}
	metrics.PaymentsVerifiedTotal.WithLabelValues("ok").Inc()
	return nil
}

const (
	deliverySubject = "Your art prints have arrived!"
	deliveryBody    = `<p>Thank you for your purchase!</p>
<p>All 11 prints from the collection are attached to this email in full resolution.</p>
<p>We'd love to see where they end up. Reply any time.</p>`
)
