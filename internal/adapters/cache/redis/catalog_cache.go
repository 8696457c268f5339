package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pet-care-dashboard/internal/domain/catalog"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:list:"

// Connect abre el cliente y hace ping.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 10 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// CatalogCache guarda listados del catálogo como JSON con TTL.
type CatalogCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *goredis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) GetList(ctx context.Context, key string) ([]catalog.Product, bool, error) {
	b, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []catalog.Product
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *CatalogCache) SetList(ctx context.Context, key string, items []catalog.Product) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, b, c.ttl).Err()
}

// Invalidate borra todos los listados (SCAN, no KEYS, para no bloquear redis).
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
