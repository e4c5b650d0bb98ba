package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"dailyhome/internal/logger"
	"dailyhome/internal/metrics"
)

// LoginRateLimiter limits login attempts per client IP using Redis counters.
func LoginRateLimiter(rdb *redis.Client, limit int64, window time.Duration) func(http.Handler) http.Handler {
	const limiterName = "login"
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("dh:rl:%s:%s", limiterName, ip)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("rate limiter failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, window).Err()
			}
			if count > limit {
				metrics.IncRateLimit(limiterName)
				w.Header().Set("Retry-After", fmt.Sprintf("%.f", window.Seconds()))
				http.Error(w, "too many login attempts", http.StatusTooManyRequests)
				return
			}
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))

			next.ServeHTTP(w, r)
		})
	}
}
