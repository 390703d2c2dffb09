package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// maxTrackedClients triggers a sweep of idle limiters.
	maxTrackedClients = 10000
	limiterIdleTTL    = 10 * time.Minute
)

// RateLimitMiddleware applies a token bucket per client IP. Paths in
// exemptPaths bypass the limiter.
func RateLimitMiddleware(rps float64, burst int, exemptPaths []string) Middleware {
	limiters := newClientLimiters(rate.Limit(rps), burst)
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exempt[r.URL.Path]; !ok && !limiters.allow(clientIP(r), time.Now()) {
				w.Header().Set("Retry-After", "1")
				RateLimited(w, "rate limit exceeded", r.URL.Path)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type clientLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
	}
}

func (c *clientLimiters) allow(ip string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cl, ok := c.clients[ip]
	if !ok {
		if len(c.clients) >= maxTrackedClients {
			c.sweep(now)
		}
		cl = &clientLimiter{Limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.AllowN(now, 1)
}

// sweep drops limiters idle for longer than limiterIdleTTL. Caller holds c.mu.
func (c *clientLimiters) sweep(now time.Time) {
	for ip, cl := range c.clients {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(c.clients, ip)
		}
	}
}

// clientIP prefers the first X-Forwarded-For hop, then the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
