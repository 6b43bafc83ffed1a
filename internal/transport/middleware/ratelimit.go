package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/pkg/ctxutil"
)

// RateLimiter keeps one token bucket per client. Authenticated requests
// are keyed by owner, anonymous ones by remote IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	idle  time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		idle:     cfg.IdleTimeout,
		visitors: make(map[string]*visitor),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	if rl.idle <= 0 {
		rl.idle = 10 * time.Minute
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	go rl.cleanup(interval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns the rate limiting middleware. It must run after Auth for
// per-owner keys to apply.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := rl.getLimiter(clientKey(r))
			if !limiter.Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[key] = &visitor{limiter: limiter, lastSeen: now}
	return limiter
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}
	return int(math.Ceil(1 / float64(rl.limit)))
}

// evictIdle drops visitors not seen for longer than the idle timeout and
// returns how many were removed.
func (rl *RateLimiter) evictIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func clientKey(r *http.Request) string {
	if ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
		return "owner:" + ownerID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
