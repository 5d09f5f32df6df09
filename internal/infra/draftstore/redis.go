package draftstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/barbershop-pro/booking-api/internal/domain/booking"
	"github.com/barbershop-pro/booking-api/internal/httperr"
)

const keyPrefix = "booking:draft:"

// RedisDraftStore holds wizard drafts in Redis with a TTL, so abandoned
// bookings clean themselves up.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisDraftStore) Save(ctx context.Context, d *domain.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+d.ID, payload, s.ttl).Err()
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, httperr.ErrBusiness("draft_not_found")
		}
		return nil, err
	}

	var d domain.Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

// Compile-time check
var _ domain.DraftStore = (*RedisDraftStore)(nil)
