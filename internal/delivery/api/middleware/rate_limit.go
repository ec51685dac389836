package middleware

import (
	"net/http"
	"sync"
	"time"

	"tourguard/config"
	"tourguard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client. Clients are keyed by the
// authenticated user when there is one and by IP otherwise.
type RateLimiter struct {
	enabled bool
	limit   rate.Limit
	burst   int
	now     func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewRateLimiter creates the limiter from configuration.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		enabled: true,
		limit:   rate.Limit(2),
		burst:   10,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
	if cfg.RateLimit != nil {
		rl.enabled = cfg.RateLimit.Enabled
		if cfg.RateLimit.RequestsPerSecond > 0 {
			rl.limit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		}
		if cfg.RateLimit.Burst > 0 {
			rl.burst = cfg.RateLimit.Burst
		}
	}

	return rl
}

// Limit rejects requests over the client's budget with 429.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		if !rl.allow(clientKey(c)) {
			c.Response().Header().Set("Retry-After", "1")

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.clients) >= limiterSweepSize {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(rl.clients, k)
			}
		}
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

func clientKey(c echo.Context) string {
	if actor, ok := GetActor(c); ok {
		return "user:" + actor.UserID.String()
	}

	return "ip:" + c.RealIP()
}
