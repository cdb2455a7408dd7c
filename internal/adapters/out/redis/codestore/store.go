// Package codestore keeps one-time registration codes in Redis. A code lives
// under its value with a TTL and is consumed with GETDEL, so redemption is
// atomic even when two redeemers race.
package codestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/registration"
	"courierhub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otc:"

// codePayload is the stored JSON shape of a registration code.
type codePayload struct {
	TelegramID int64     `json:"telegram_id"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// RedisCodeStore implements CodeStore over a Redis client.
type RedisCodeStore struct {
	client *redis.Client
}

// NewRedisCodeStore creates a code store over the given client.
func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

// Save stores the code under its value unless that value is already taken.
// SETNX keeps issuance collision-safe; an occupied value surfaces as an
// InvalidStateError so the issuer can regenerate.
func (s *RedisCodeStore) Save(ctx context.Context, code *registration.Code, ttl time.Duration) error {
	payload, err := json.Marshal(codePayload{
		TelegramID: code.TelegramID,
		Role:       string(code.Role),
		CreatedAt:  code.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshaling registration code: %w", err)
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+code.Value, payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("saving registration code: %w", err)
	}
	if !ok {
		return errs.NewInvalidStateError(
			fmt.Sprintf("registration code %s already exists", code.Value))
	}

	return nil
}

// Redeem atomically fetches and deletes a code. An unknown or expired value
// surfaces as an ObjectNotFoundError.
func (s *RedisCodeStore) Redeem(ctx context.Context, value string) (*registration.Code, error) {
	raw, err := s.client.GetDel(ctx, keyPrefix+value).Result()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundError("code", value)
	}
	if err != nil {
		return nil, fmt.Errorf("redeeming registration code: %w", err)
	}

	var payload codePayload
	if err = json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unmarshaling registration code: %w", err)
	}

	return &registration.Code{
		Value:      value,
		TelegramID: payload.TelegramID,
		Role:       registration.Role(payload.Role),
		CreatedAt:  payload.CreatedAt,
	}, nil
}
