package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore maps the adapter contract directly onto GET/SET/DEL.
// Documents are kept without expiry.
type RedisStore struct {
	rdb    *goredis.Client
	logger *log.Logger
}

func NewRedisStore(addr string, logger *log.Logger) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{rdb: rdb, logger: logger}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.logger.Printf("store: read %q failed: %v", key, err)
		}
		return nil, false
	}
	return raw, true
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Printf("store: write %q failed: %v", key, err)
	}
}

func (r *RedisStore) Remove(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.logger.Printf("store: remove %q failed: %v", key, err)
	}
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
