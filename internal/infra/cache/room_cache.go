package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "hotel:room:"

// RoomCache is a read-through cache in front of a RoomReadStore. Only FindByID is cached:
// rooms never change after seeding, while search results depend on live bookings.
// Redis failures degrade to the underlying store.
type RoomCache struct {
	next   queries.RoomReadStore
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRoomCache(next queries.RoomReadStore, client redis.UniversalClient, ttl time.Duration) *RoomCache {
	return &RoomCache{next: next, client: client, ttl: ttl}
}

func RoomKey(id uuid.UUID) string {
	return roomKeyPrefix + id.String()
}

func (c *RoomCache) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	key := RoomKey(id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var view queries.RoomView
		if jsonErr := json.Unmarshal(raw, &view); jsonErr == nil {
			return &view, nil
		}
		slog.Warn("discarding unreadable room cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("room cache read failed", "key", key, "error", err.Error())
	}

	view, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(view); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			slog.Warn("room cache write failed", "key", key, "error", setErr.Error())
		}
	}
	return view, nil
}

func (c *RoomCache) Search(ctx context.Context, f queries.RoomSearchFilter, limit, offset int32) ([]*queries.RoomView, error) {
	return c.next.Search(ctx, f, limit, offset)
}

func (c *RoomCache) Count(ctx context.Context, f queries.RoomSearchFilter) (int64, error) {
	return c.next.Count(ctx, f)
}

// Invalidate drops cached rooms, used after the catalog is reseeded.
func (c *RoomCache) Invalidate(ctx context.Context, ids ...uuid.UUID) error {
	return InvalidateRooms(ctx, c.client, ids...)
}

func InvalidateRooms(ctx context.Context, client redis.UniversalClient, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RoomKey(id)
	}
	return client.Del(ctx, keys...).Err()
}
