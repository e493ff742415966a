package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/teaser/internal/migrations"
)

// Cache provides SQLite-backed caching for metadata API responses.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache wraps an open database that already has the cache schema.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// OpenCache opens (creating if needed) the cache database at path and applies
// the schema.
func OpenCache(ctx context.Context, path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.ExecContext(ctx, migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return NewCache(db), nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get retrieves a cached value by key.
// Returns nil, false if not found or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	var value string
	var expiresAt time.Time

	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err != nil || c.now().After(expiresAt) {
		return nil, false
	}
	return []byte(value), true
}

// Set stores a value with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), c.now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Prune removes all expired entries and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE expires_at < ?", c.now(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}

// cached returns the JSON value stored under key, or calls fetch and stores
// its result for ttl. A nil cache always calls fetch. Cache failures are
// logged and never returned.
func cached[T any](ctx context.Context, c *Cache, log *slog.Logger, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if c != nil {
		if data, ok := c.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				log.Debug("cache hit", "key", key)
				return v, nil
			}
			log.Warn("failed to unmarshal cached value", "key", key)
		}
	}

	v, err := fetch()
	if err != nil || c == nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("failed to marshal value for cache", "key", key, "error", err)
		return v, nil
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		log.Warn("failed to cache value", "key", key, "error", err)
	}
	return v, nil
}
