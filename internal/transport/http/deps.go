package http

import (
	"context"

	"github.com/go-checkout-api/internal/domain"
	"github.com/go-checkout-api/internal/infrastructure/razorpay"
)

// SessionStore is the minimal interface the router requires from an OTP
// session store. Both the in-memory and Redis implementations satisfy it.
type SessionStore interface {
	Get(ctx context.Context, email string) (*domain.OTPSession, error)
	Set(ctx context.Context, email string, s *domain.OTPSession) error
	Delete(ctx context.Context, email string) error
}

// Mailer is the minimal interface the router requires from the mail
// infrastructure.
type Mailer interface {
	SendEmail(to, subject, htmlBody string, attachments ...string) error
}

// OrderGateway is the minimal interface the router requires from the payment
// gateway client.
type OrderGateway interface {
	CreateOrder(ctx context.Context, in razorpay.CreateOrderInput) (*domain.Order, error)
}
