// Package viewcache caches ordered itinerary views in Redis.
// Entries are dropped on every mutation and expire after a TTL.
//
// Each itinerary also has a generation counter that every mutation bumps.
// A view is written only if the generation its loader read beforehand is
// still current, so a load that raced a mutation never lands in the cache.
package viewcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

const (
	keyPrefix = "travelplan:itinerary:"
	genSuffix = ":gen"

	// genTTL is far longer than any load, so a counter cannot expire while
	// a load that read it is still running. It is refreshed on every bump.
	genTTL = 24 * time.Hour
)

// storeIfCurrent writes ARGV[2] to KEYS[1] only when the counter at KEYS[2]
// (missing reads as 0) equals ARGV[1]. ARGV[3] is the TTL in milliseconds;
// zero keeps the view until the next mutation.
var storeIfCurrent = redis.NewScript(`
local gen = redis.call("GET", KEYS[2])
if gen == false then gen = "0" end
if gen ~= ARGV[1] then return 0 end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// Cache stores itineraries keyed by owner and itinerary id.
type Cache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// New creates a cache over an existing Redis client.
func New(rdb redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// NewClient opens a Redis client from config and pings it once.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// Key returns the cache key of an itinerary view.
func Key(ownerID, id uuid.UUID) string {
	return keyPrefix + ownerID.String() + ":" + id.String()
}

// GenerationKey returns the key of an itinerary's mutation counter.
func GenerationKey(ownerID, id uuid.UUID) string {
	return Key(ownerID, id) + genSuffix
}

// Generation returns the itinerary's mutation counter. Read it before
// loading a view and pass it to Set.
func (c *Cache) Generation(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, GenerationKey(ownerID, id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("view cache generation: %w", err)
	}
	return gen, nil
}

// Get returns the cached itinerary. A miss is (nil, false, nil).
func (c *Cache) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(ownerID, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("view cache get: %w", err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, false, fmt.Errorf("view cache decode: %w", err)
	}
	if it.Items == nil {
		it.Items = []domain.Item{}
	}

	return &it, true, nil
}

// Set stores it under its owner and id if the itinerary's generation is
// still gen. It reports whether the view was written.
func (c *Cache) Set(ctx context.Context, it *domain.Itinerary, gen int64) (bool, error) {
	raw, err := json.Marshal(it)
	if err != nil {
		return false, fmt.Errorf("view cache encode: %w", err)
	}

	keys := []string{Key(it.UserID, it.ID), GenerationKey(it.UserID, it.ID)}
	stored, err := storeIfCurrent.Run(ctx, c.rdb, keys,
		strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("view cache set: %w", err)
	}

	return stored == 1, nil
}

// Invalidate bumps the itinerary's generation and drops the cached view.
// Dropping a missing key is not an error.
func (c *Cache) Invalidate(ctx context.Context, ownerID, id uuid.UUID) error {
	genKey := GenerationKey(ownerID, id)
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("view cache bump generation: %w", err)
	}
	if err := c.rdb.Expire(ctx, genKey, genTTL).Err(); err != nil {
		return fmt.Errorf("view cache bump generation: %w", err)
	}
	if err := c.rdb.Del(ctx, Key(ownerID, id)).Err(); err != nil {
		return fmt.Errorf("view cache invalidate: %w", err)
	}
	return nil
}

// Ping checks that Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
