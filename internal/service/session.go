package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartrecipes/backend/internal/types"
)

// recentSearchLimit caps the per-session recent-search list.
const recentSearchLimit = 5

// SessionStore keeps per-session search state and the recent-search list in
// Redis. Each session's state is logically private to that session.
type SessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSessionStore creates a new SessionStore instance
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{redis: client, ttl: ttl}
}

func stateKey(sessionID string) string {
	return fmt.Sprintf("session:%s:search", sessionID)
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("session:%s:history", sessionID)
}

// SaveState stores the session's active search state, replacing any
// previous one.
func (s *SessionStore) SaveState(ctx context.Context, sessionID string, state *types.SearchState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal search state: %w", err)
	}
	return s.redis.Set(ctx, stateKey(sessionID), data, s.ttl).Err()
}

// State loads the session's active search state.
func (s *SessionStore) State(ctx context.Context, sessionID string) (*types.SearchState, error) {
	data, err := s.redis.Get(ctx, stateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoActiveSearch
	}
	if err != nil {
		return nil, fmt.Errorf("load search state: %w", err)
	}
	var state types.SearchState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal search state: %w", err)
	}
	return &state, nil
}

// RecordSearch pushes a search term onto the session's recent list,
// deduplicated and trimmed to the most recent entries.
func (s *SessionStore) RecordSearch(ctx context.Context, sessionID, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	key := historyKey(sessionID)
	pipe := s.redis.TxPipeline()
	pipe.LRem(ctx, key, 0, term)
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, recentSearchLimit-1)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// RecentSearches returns the session's recent search terms, most recent
// first.
func (s *SessionStore) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	terms, err := s.redis.LRange(ctx, historyKey(sessionID), 0, recentSearchLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	return terms, nil
}
