// Package redis provides a Redis read-through cache for personnel registry
// answers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const keyPrefix = "personnel:"

// Lookuper resolves a personnel identifier against the registry.
type Lookuper interface {
	Lookup(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error)
}

// Cache wraps a Redis client holding registry answers.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
}

// New connects to Redis and fails fast if the server is unreachable.
func New(ctx context.Context, cfg config.CacheConfig) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &Cache{client: client, ttl: cfg.TTL}, nil
}

// Ping checks the connection, used by the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Cache) Close() error {
	return c.client.Close()
}

// entry is the cached form of one registry answer. Unknown identifiers are
// cached too so that repeated misses do not hit the registry.
type entry struct {
	Found       bool   `json:"found"`
	PersonnelID string `json:"personnel_id,omitempty"`
	Active      bool   `json:"active"`
}

func (c *Cache) get(ctx context.Context, personnelID string) (entry, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+personnelID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return entry{}, false, nil
	}
	if err != nil {
		return entry{}, false, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return entry{}, false, fmt.Errorf("decode cached entry: %w", err)
	}
	return e, true, nil
}

func (c *Cache) set(ctx context.Context, personnelID string, e entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+personnelID, raw, c.ttl).Err()
}

// Registry is a read-through cache in front of a Lookuper. Cache failures are
// logged and bypassed; registry errors are never cached.
type Registry struct {
	next  Lookuper
	cache *Cache
	log   *slog.Logger
}

// NewRegistry wraps next with cache.
func NewRegistry(next Lookuper, cache *Cache, logger *slog.Logger) *Registry {
	return &Registry{
		next:  next,
		cache: cache,
		log:   logger.With("adapter", "registry_cache"),
	}
}

// Lookup implements Lookuper.
func (r *Registry) Lookup(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error) {
	cached, hit, err := r.cache.get(ctx, personnelID)
	if err != nil {
		r.log.WarnContext(ctx, "registry cache read failed", slog.String("error", err.Error()))
	}
	if hit {
		return domain.PersonnelRecord{PersonnelID: cached.PersonnelID, Active: cached.Active}, cached.Found, nil
	}

	rec, found, err := r.next.Lookup(ctx, personnelID)
	if err != nil {
		return domain.PersonnelRecord{}, false, err
	}

	e := entry{Found: found, PersonnelID: rec.PersonnelID, Active: rec.Active}
	if err := r.cache.set(ctx, personnelID, e); err != nil {
		r.log.WarnContext(ctx, "registry cache write failed", slog.String("error", err.Error()))
	}
	return rec, found, nil
}
