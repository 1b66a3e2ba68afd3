package otpstore

import (
	"context"
	"sync"

	"github.com/go-checkout-api/internal/domain"
)

// Memory is the default OTP session store: a process-lifetime map keyed by
// email. There is no TTL sweeper; expiry is enforced lazily by the verifier.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]domain.OTPSession
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]domain.OTPSession)}
}

// Get returns the session for email, or domain.ErrNoSession.
func (m *Memory) Get(_ context.Context, email string) (*domain.OTPSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[email]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &s, nil
}

// Set overwrites the session for email in full.
func (m *Memory) Set(_ context.Context, email string, s *domain.OTPSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[email] = *s
	return nil
}

// Delete removes the session for email. Deleting an absent entry is not an error.
func (m *Memory) Delete(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, email)
	return nil
}
