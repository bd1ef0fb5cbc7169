package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"lumina/backend/config"
)

// Fixed key for the current-user record; all other documents are scoped by
// registration number.
const CurrentUserKey = "lumina_current_user"

func SyllabusKey(regNo string) string {
	return "lumina_syllabus_" + regNo
}

func ProgressKey(regNo string) string {
	return "lumina_progress_" + regNo
}

// Store is a string-keyed key-value adapter holding JSON-encoded documents.
// Reads report presence, never errors; writes are fire-and-forget from the
// caller's perspective (backends log their own failures).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Remove(ctx context.Context, key string)
}

// GetJSON decodes the value under key into a T. An absent key and a corrupt
// value are indistinguishable: both yield ok=false and a zero T. Callers
// proceed as if no prior state existed.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var doc T
	raw, ok := s.Get(ctx, key)
	if !ok {
		return doc, false
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		var zero T
		return zero, false
	}
	return doc, true
}

// SetJSON marshals doc and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	s.Set(ctx, key, raw)
}

// Open builds the store backend selected by STORE_DRIVER.
func Open(cfg *config.Config, logger *log.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite", "postgres":
		return NewGormStore(cfg, logger)
	case "redis":
		return NewRedisStore(cfg.RedisAddr, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
