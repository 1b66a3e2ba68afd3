package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-checkout-api/internal/domain"
	"github.com/go-checkout-api/internal/metrics"
	"github.com/go-checkout-api/internal/pkg/keylock"
	"github.com/go-checkout-api/internal/pkg/validate"
)

// SessionStore is the slice of the OTP store this service needs.
type SessionStore interface {
	Get(ctx context.Context, email string) (*domain.OTPSession, error)
	Set(ctx context.Context, email string, s *domain.OTPSession) error
	Delete(ctx context.Context, email string) error
}

// Mailer is the slice of the mail infrastructure this service needs.
type Mailer interface {
	SendEmail(to, subject, htmlBody string, attachments ...string) error
}

type Service interface {
	// Issue creates a fresh OTP session for email, overwriting any previous
	// one, and dispatches the code by email.
	Issue(ctx context.Context, email string) error
	// Verify checks the submitted code against the stored session and marks
	// it verified on match.
	Verify(ctx context.Context, email, code string) error
}

type ServiceDeps struct {
	Store  SessionStore
	Mailer Mailer
	TTL    time.Duration
	Now    func() time.Time // defaults to time.Now
}

type service struct {
	store  SessionStore
	mailer Mailer
	locks  *keylock.KeyLock
	ttl    time.Duration
	now    func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		store:  deps.Store,
		mailer: deps.Mailer,
		locks:  keylock.New(),
		ttl:    deps.TTL,
		now:    now,
	}
}

func (s *service) Issue(ctx context.Context, email string) error {
	if !validate.Email(email) {
		return fmt.Errorf("invalid email address: %w", domain.ErrInvalidInput)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	s.locks.Lock(email)
	defer s.locks.Unlock(email)

	// Full overwrite: a re-request invalidates the previous code and resets
	// the verified flag.
	sess := &domain.OTPSession{Code: code, IssuedAt: s.now()}
	if err := s.store.Set(ctx, email, sess); err != nil {
		return err
	}
	metrics.OTPIssuedTotal.Inc()

	// The session is written before dispatch and is not rolled back on a
	// delivery failure; a failed send is surfaced and the next issue request
	// overwrites the orphaned session.
	if err := s.mailer.SendEmail(email, otpSubject, otpBody(code)); err != nil {
		return fmt.Errorf("send otp email: %v: %w", err, domain.ErrDeliveryFailed)
	}
	return nil
}

func (s *service) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("email and otp are required: %w", domain.ErrInvalidInput)
	}

	s.locks.Lock(email)
	defer s.locks.Unlock(email)

	sess, err := s.store.Get(ctx, email)
	if err != nil {
		metrics.OTPVerifiedTotal.WithLabelValues("no_session").Inc()
		return err
	}

	if sess.Expired(s.now(), s.ttl) {
		// Lazy deletion: the expired session is removed here rather than by a
		// background sweeper.
		if err := s.store.Delete(ctx, email); err != nil {
			return err
		}
		metrics.OTPVerifiedTotal.WithLabelValues("expired").Inc()
		return domain.ErrOTPExpired
	}

	if sess.Code != code {
		// Session intact: retries are allowed until expiry, there is no
		// attempt lockout.
		metrics.OTPVerifiedTotal.WithLabelValues("mismatch").Inc()
		return domain.ErrOTPMismatch
	}

	sess.Verified = true
	if err := s.store.Set(ctx, email, sess); err != nil {
		return err
	}
	metrics.OTPVerifiedTotal.WithLabelValues("ok").Inc()
	return nil
}

// generateCode draws uniformly from [100000, 999999], so codes are six digits
// and never carry a leading zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", 100000+n.Int64()), nil
}

const otpSubject = "Your verification code"

func otpBody(code string) string {
	return fmt.Sprintf(`<p>Your one-time verification code is:</p>
<h2 style="letter-spacing:4px">%s</h2>
<p>It expires in 5 minutes. If you didn't request this, you can ignore this email.</p>`, code)
}
