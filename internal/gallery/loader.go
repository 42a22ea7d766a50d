// Package gallery provides the read-only template snapshot a scan session
// matches against, cached in Redis between gallery refreshes.
package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/zainabhax0r-dev/facescan-pro/internal/logging"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
)

const snapshotKey = "gallery:snapshot"

// TemplateSource loads the full gallery from the backing store.
type TemplateSource interface {
	GetAll(ctx context.Context) (match.Gallery, error)
}

// Loader serves gallery snapshots. Each scan session takes one snapshot
// at start; the cache keeps gallery refreshes cheap across many stations.
type Loader struct {
	templates TemplateSource
	cache     Cache
	logger    *zap.Logger

	ttl            time.Duration
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewLoader constructs a loader with the given snapshot TTL.
func NewLoader(templates TemplateSource, cache Cache, ttl time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		templates:      templates,
		cache:          cache,
		logger:         logger.Named("gallery_loader"),
		ttl:            ttl,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// Snapshot returns the current gallery. A cache hit avoids the database;
// a miss or a broken cache falls through to the template store. Cache
// write failures are logged and ignored: the snapshot is still served.
func (l *Loader) Snapshot(ctx context.Context) (match.Gallery, error) {
	if cached, err := l.withRedisGet(ctx, "gallery.cache.get", snapshotKey); err == nil {
		var gallery match.Gallery
		if err := json.Unmarshal([]byte(cached), &gallery); err != nil {
			l.logger.Warn("failed to decode cached gallery", zap.Error(err))
		} else {
			return gallery, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		l.logger.Warn("failed to read gallery cache", zap.Error(err))
	}

	gallery, err := l.templates.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	serialized, err := json.Marshal(gallery)
	if err != nil {
		l.logger.Warn("failed to serialize gallery snapshot", zap.Error(err))
		return gallery, nil
	}
	if err := l.withRedisRetry(ctx, "gallery.cache.set", func() error {
		return l.cache.Set(ctx, snapshotKey, string(serialized), l.ttl)
	}); err != nil {
		l.logger.Warn("failed to cache gallery snapshot", zap.Error(err))
	}
	return gallery, nil
}

// Invalidate drops the cached snapshot. Called after an enrollment
// completes so the next scan session sees the new template.
func (l *Loader) Invalidate(ctx context.Context) {
	if err := l.withRedisRetry(ctx, "gallery.cache.del", func() error {
		return l.cache.Del(ctx, snapshotKey)
	}); err != nil {
		l.logger.Warn("failed to invalidate gallery cache", zap.Error(err))
	}
}

func (l *Loader) withRedisRetry(ctx context.Context, operation string, fn func() error) error {
	if l.retryAttempts <= 1 {
		return logging.NewOperationError(operation, "", fn())
	}

	backoff := l.initialBackoff
	opLogger := logging.WithOperation(l.logger, operation, "")
	var err error
	for attempt := 0; attempt < l.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, "", ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= l.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == l.retryAttempts-1 {
			return logging.NewOperationError(operation, "", err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, "", err)
}

func (l *Loader) withRedisGet(ctx context.Context, operation, cacheKey string) (string, error) {
	var result string
	err := l.withRedisRetry(ctx, operation, func() error {
		value, err := l.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
