package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/khaild19/10AI/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// unix nanoseconds; written by requests, read by cleanup
	lastSeen atomic.Int64
}

func (c *client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

func (c *client) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastSeen.Load()))
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch(time.Now())
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for now := range ticker.C {
		i.cleanup(now, 3*time.Minute)
	}
}

// cleanup drops clients idle for longer than maxIdle.
func (i *IPRateLimiter) cleanup(now time.Time, maxIdle time.Duration) {
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).idleSince(now) > maxIdle {
			i.ips.Delete(key)
		}
		return true
	})
}

// AuthRateLimit throttles login and registration per client IP.
func AuthRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.AuthRPS, cfg.AuthBurst
	})
}

// DownloadRateLimit throttles image acquisition, which holds a request open
// for every remote fetch.
func DownloadRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.DownloadRPS, cfg.DownloadBurst
	})
}

// RateLimitMiddleware limits requests per client IP. Limits are read from
// the current config on every request so a reload takes effect without a
// restart.
func RateLimitMiddleware(pick func(config.RateLimitConfig) (float64, int)) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		rps, burst := pick(cfg)
		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(rps), burst)
		})

		l := limiter.getLimiter(c.ClientIP())
		if l.Limit() != rate.Limit(rps) {
			l.SetLimit(rate.Limit(rps))
		}
		if l.Burst() != burst {
			l.SetBurst(burst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
