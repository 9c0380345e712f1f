package middleware

import (
	"context"
	"time"

	"github.com/deppfellow/recipes-api/internal/errs"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	rateLimitKeyPrefix    = "recipes:ratelimit:"
	rateLimitRedisTimeout = 500 * time.Millisecond
	rateLimitMemoryTTL    = 3 * time.Minute
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// RecordRateLimitHit records a RateLimitHit custom event in New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// RateLimiter limits each client IP to server.rate_limit_requests per
// server.rate_limit_window. Counters live in Redis when it is connected and
// in process memory otherwise. A zero budget disables the limiter.
func (r *RateLimitMiddleware) RateLimiter() echo.MiddlewareFunc {
	cfg := r.server.Config.Server
	if cfg.RateLimitRequests <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store(),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("identifier", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, please retry later")
		},
	})
}

func (r *RateLimitMiddleware) store() middleware.RateLimiterStore {
	cfg := r.server.Config.Server

	if r.server.Redis != nil {
		return NewRedisRateLimiterStore(r.server.Redis, cfg.RateLimitRequests, cfg.RateLimitWindow, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.RateLimitRequests) / cfg.RateLimitWindow.Seconds()),
		Burst:     cfg.RateLimitRequests,
		ExpiresIn: rateLimitMemoryTTL,
	})
}

// RedisRateLimiterStore is a fixed-window counter shared by every instance
// pointing at the same Redis.
type RedisRateLimiterStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *zerolog.Logger
}

func NewRedisRateLimiterStore(client *redis.Client, limit int, window time.Duration, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: logger,
	}
}

// Allow implements middleware.RateLimiterStore. Redis failures let the
// request through.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitRedisTimeout)
	defer cancel()

	key := rateLimitKeyPrefix + identifier

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.window)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("identifier", identifier).Msg("rate limit counter unavailable")
		return true, nil
	}

	return count.Val() <= s.limit, nil
}
