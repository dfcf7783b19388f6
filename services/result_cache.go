package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"content-ops-platform/internal/logger"
	"content-ops-platform/internal/telemetry"
)

// ResultCache holds assistant results keyed by operation, snapshot
// generation, and input. Two disciplines apply per key:
//   - at-most-one in-flight upstream call; concurrent callers share it
//   - entries are scoped to a snapshot generation, so a fresh ingestion
//     cycle invalidates them without explicit deletion
//
// Redis is optional; without it the cache degrades to pure single-flight.
type ResultCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	metrics *telemetry.Metrics

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

type inflightCall struct {
	done chan struct{}
	data []byte
	err  error
}

func NewResultCache(rdb *redis.Client, ttl time.Duration, metrics *telemetry.Metrics) *ResultCache {
	return &ResultCache{
		rdb:      rdb,
		ttl:      ttl,
		metrics:  metrics,
		inflight: make(map[string]*inflightCall),
	}
}

// CacheKey builds a deterministic key from the operation name, snapshot
// generation, and the request inputs.
func CacheKey(op string, generation uint64, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("ai:%s:g%d:%s", op, generation, hex.EncodeToString(sum[:8]))
}

// Do returns the cached JSON for key, or runs fn once, caches its marshaled
// result, and returns it. Errors are shared with concurrent waiters but
// never cached.
func (c *ResultCache) Do(ctx context.Context, op, key string, fn func() (interface{}, error)) (json.RawMessage, error) {
	if data, ok := c.get(ctx, key); ok {
		c.metrics.RecordCacheHit(op)
		return data, nil
	}

	c.mu.Lock()
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.data, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, key)
		c.mu.Unlock()
		close(call.done)
	}()

	result, err := fn()
	if err != nil {
		call.err = err
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		call.err = err
		return nil, err
	}
	call.data = data

	c.set(ctx, key, data)
	return data, nil
}

func (c *ResultCache) get(ctx context.Context, key string) (json.RawMessage, bool) {
	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			// Fail open - a cache outage must not block assistant calls
			logger.Warn("Result cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

func (c *ResultCache) set(ctx context.Context, key string, data []byte) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("Result cache write failed", "key", key, "error", err)
	}
}
