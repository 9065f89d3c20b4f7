package middleware

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	sharedWindow           = time.Second
)

// windowCounter counts hits per key in a fixed window shared by every
// instance of the API.
type windowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

func (c redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	ttlCmd := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	count, err := incrCmd.Result()
	if err != nil {
		return 0, err
	}
	// -1: key has no expiry, -2: key vanished between INCR and TTL.
	if ttl, err := ttlCmd.Result(); err != nil || ttl == -1 || ttl == -2 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return count, fmt.Errorf("set expiry on %s: %w", key, err)
		}
	}
	return count, nil
}

// RateLimiterMiddleware limits requests per client IP. With a Redis client it
// counts in a window shared across instances; otherwise, and whenever Redis
// fails, it falls back to a local token bucket per IP.
type RateLimiterMiddleware struct {
	limiters sync.Map
	counter  windowCounter
	cfg      config.RateLimitConfig
	logger   *slog.Logger
}

// NewRateLimiterMiddleware starts a janitor goroutine that lives until ctx is
// cancelled. redisClient may be nil.
func NewRateLimiterMiddleware(ctx context.Context, cfg config.RateLimitConfig, redisClient *redis.Client, logger *slog.Logger) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{
		cfg:    cfg,
		logger: logger.With("component", "RateLimiter"),
	}

	switch {
	case !cfg.Enabled:
		rl.logger.Info("Rate limiting is disabled via configuration.")
	case redisClient != nil:
		rl.counter = redisCounter{client: redisClient}
		rl.logger.Info("Rate limiter using shared Redis window", "limit", rl.windowLimit(), "window", sharedWindow)
	default:
		rl.logger.Info("Rate limiter using in-memory buckets", "rps", cfg.RPS, "burst", cfg.Burst)
	}

	if cfg.Enabled {
		go rl.cleanupLimiters(ctx, limiterCleanupInterval)
	}

	return rl
}

// windowLimit is the number of requests the shared window admits.
func (rl *RateLimiterMiddleware) windowLimit() int64 {
	limit := int64(math.Ceil(rl.cfg.RPS))
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (rl *RateLimiterMiddleware) getLimiter(ip string) *rate.Limiter {
	if limiter, exists := rl.limiters.Load(ip); exists {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := rl.limiters.LoadOrStore(ip, rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst))
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiterMiddleware) cleanupLimiters(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops limiters whose bucket has refilled completely.
func (rl *RateLimiterMiddleware) sweep() {
	now := time.Now()
	rl.limiters.Range(func(key, value interface{}) bool {
		limiter := value.(*rate.Limiter)
		if limiter.TokensAt(now) >= float64(rl.cfg.Burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiterMiddleware) extractIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	xRealIP := r.Header.Get("X-Real-IP")
	if xRealIP != "" {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// allow reports whether the request may proceed.
func (rl *RateLimiterMiddleware) allow(ctx context.Context, ip string) bool {
	if rl.counter != nil {
		key := "ratelimit:" + ip
		count, err := rl.counter.Hit(ctx, key, sharedWindow)
		if err == nil {
			return count <= rl.windowLimit()
		}
		rl.logger.ErrorContext(ctx, "Shared rate limit check failed, using local bucket", "error", err, "ip", ip, "key", key)
	}
	return rl.getLimiter(ip).Allow()
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.extractIP(r)

		if !rl.allow(r.Context(), ip) {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			retryAfter := 1
			if rl.counter == nil && rl.cfg.RPS > 0 {
				retryAfter = int(math.Ceil(1 / rl.cfg.RPS))
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(dto.ErrorResponse{
				Error: dto.ErrorDetail{Message: "Rate limit exceeded"},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
