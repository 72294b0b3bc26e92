package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// PendingRegistration is a registration waiting for its emailed
// verification code. Held only in the expiring store, never in process
// memory.
type PendingRegistration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Code         string `json:"code"`
}

// PendingStore is the Redis-backed, time-bounded store for pending
// registrations. Entries expire on their own; there is no cleanup job.
type PendingStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewPendingStore creates a new PendingStore instance
func NewPendingStore(client *redis.Client, ttl time.Duration) *PendingStore {
	return &PendingStore{redis: client, ttl: ttl}
}

func pendingKey(email string) string {
	return fmt.Sprintf("pending_registration:%s", strings.ToLower(email))
}

// Put stores a pending registration, replacing any previous attempt for
// the same address and restarting the expiry window.
func (s *PendingStore) Put(ctx context.Context, reg *PendingRegistration) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshal pending registration: %w", err)
	}
	return s.redis.Set(ctx, pendingKey(reg.Email), data, s.ttl).Err()
}

// Get loads a pending registration; expired or unknown addresses report
// ErrVerificationInvalid.
func (s *PendingStore) Get(ctx context.Context, email string) (*PendingRegistration, error) {
	data, err := s.redis.Get(ctx, pendingKey(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrVerificationInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("load pending registration: %w", err)
	}
	var reg PendingRegistration
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("unmarshal pending registration: %w", err)
	}
	return &reg, nil
}

// Delete removes a pending registration after successful verification.
func (s *PendingStore) Delete(ctx context.Context, email string) error {
	return s.redis.Del(ctx, pendingKey(email)).Err()
}
