// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key (client IP, email, ...).
// It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows burst requests per key immediately, refilled at perMinute
// tokens per minute. Buckets untouched for ten minutes are dropped.
func New(perMinute, burst int) *Limiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &Limiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idle:    10 * time.Minute,
		now:     time.Now,
	}
}

// Allow consumes a token for key and reports whether one was available.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		l.sweep(now)
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Reset forgets key, e.g. after a successful login.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Len is the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep runs under l.mu.
func (l *Limiter) sweep(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.idle {
			delete(l.buckets, k)
		}
	}
}

// ClientIP extracts the client IP from an HTTP request.
// X-Forwarded-For (first entry) and X-Real-IP win over RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles POST /login by client IP and by account email.
type LoginLimiter struct {
	ip    *Limiter
	email *Limiter
}

// NewLoginLimiter allows perMinute attempts per IP and half that per email.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	perEmail := perMinute / 2
	if perEmail < 1 {
		perEmail = 1
	}
	return &LoginLimiter{
		ip:    New(perMinute, perMinute),
		email: New(perEmail, perEmail),
	}
}

// Check reports whether the attempt may proceed and, if not, a user message.
func (ll *LoginLimiter) Check(r *http.Request, email string) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}
	if key := normalizeEmail(email); key != "" && !ll.email.Allow(key) {
		return false, "Too many login attempts for this account. Please wait a few minutes."
	}
	return true, ""
}

// ResetEmail clears the per-account bucket after a successful login.
func (ll *LoginLimiter) ResetEmail(email string) {
	if key := normalizeEmail(email); key != "" {
		ll.email.Reset(key)
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
