package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"campwatch/internal/domain/entity"
	"campwatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	kindRecreationAreas = "recareas"
	kindCampgrounds     = "campgrounds"
	kindCampsites       = "campsites"
)

// cachedSearchProvider decorates a SearchProvider with a Redis read-through cache.
// Only successful lookups are stored.
type cachedSearchProvider struct {
	next   service.SearchProvider
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCachedSearchProvider wraps next. With a nil client it returns next unchanged.
func NewCachedSearchProvider(next service.SearchProvider, rdb *redis.Client, ttl time.Duration, prefix string, logger *slog.Logger) service.SearchProvider {
	if rdb == nil {
		return next
	}

	return &cachedSearchProvider{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

func (p *cachedSearchProvider) FindRecreationAreas(ctx context.Context, query service.RecreationAreaQuery) ([]entity.RecreationArea, error) {
	return readThrough(ctx, p, kindRecreationAreas, query, func() ([]entity.RecreationArea, error) {
		return p.next.FindRecreationAreas(ctx, query)
	})
}

func (p *cachedSearchProvider) FindCampgrounds(ctx context.Context, query service.CampgroundQuery) ([]entity.Campground, error) {
	return readThrough(ctx, p, kindCampgrounds, query, func() ([]entity.Campground, error) {
		return p.next.FindCampgrounds(ctx, query)
	})
}

func (p *cachedSearchProvider) FindCampsites(ctx context.Context, campgroundID int64) ([]entity.Campsite, error) {
	return readThrough(ctx, p, kindCampsites, campgroundID, func() ([]entity.Campsite, error) {
		return p.next.FindCampsites(ctx, campgroundID)
	})
}

func readThrough[T any](ctx context.Context, p *cachedSearchProvider, kind string, filters any, load func() ([]T, error)) ([]T, error) {
	key, err := p.key(kind, filters)
	if err != nil {
		return load()
	}

	raw, err := p.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []T
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		p.logger.WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		p.logger.WarnContext(ctx, "Search cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	result, err := load()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	if err := p.rdb.Set(ctx, key, payload, p.ttl).Err(); err != nil {
		p.logger.WarnContext(ctx, "Search cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return result, nil
}

// key is prefix:kind:sha1(filters as JSON).
func (p *cachedSearchProvider) key(kind string, filters any) (string, error) {
	encoded, err := json.Marshal(filters)
	if err != nil {
		return "", errors.WithStack(err)
	}
	sum := sha1.Sum(encoded)

	return fmt.Sprintf("%s:%s:%x", p.prefix, kind, sum[:]), nil
}
