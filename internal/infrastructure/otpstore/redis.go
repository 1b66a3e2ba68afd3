package otpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-checkout-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// Redis stores OTP sessions in Redis so several instances can share them.
// Keys carry a housekeeping TTL of twice the OTP lifetime; the verifier still
// enforces the real expiry against IssuedAt, so a key outliving its session
// only costs memory, never correctness.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, otpTTL time.Duration) *Redis {
	return &Redis{client: client, ttl: 2 * otpTTL}
}

func (r *Redis) Get(ctx context.Context, email string) (*domain.OTPSession, error) {
	raw, err := r.client.Get(ctx, keyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var s domain.OTPSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode otp session: %w", err)
	}
	return &s, nil
}

func (r *Redis) Set(ctx context.Context, email string, s *domain.OTPSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode otp session: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+email, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
