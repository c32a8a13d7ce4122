// Package timeouts holds the per-request deadlines used by handlers and stores.
//
// Handlers wrap every database call or outbound API call:
//
//	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
//	defer cancel()
//
// Tiers:
//   - Ping: health checks
//   - Short: a single row by primary key
//   - Medium: list queries and single-row writes
//   - Long: writes that span a transaction (event delete, association)
//   - Upstream: a call from an MVC controller to the JSON API
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Tier names a timeout class.
type Tier string

const (
	TierPing     Tier = "ping"
	TierShort    Tier = "short"
	TierMedium   Tier = "medium"
	TierLong     Tier = "long"
	TierUpstream Tier = "upstream"
)

var defaults = map[Tier]time.Duration{
	TierPing:     2 * time.Second,
	TierShort:    5 * time.Second,
	TierMedium:   10 * time.Second,
	TierLong:     30 * time.Second,
	TierUpstream: 15 * time.Second,
}

// envKeys maps each tier to the environment variable that overrides it.
var envKeys = map[Tier]string{
	TierPing:     "GROUPFLIGHT_TIMEOUT_PING",
	TierShort:    "GROUPFLIGHT_TIMEOUT_SHORT",
	TierMedium:   "GROUPFLIGHT_TIMEOUT_MEDIUM",
	TierLong:     "GROUPFLIGHT_TIMEOUT_LONG",
	TierUpstream: "GROUPFLIGHT_TIMEOUT_UPSTREAM",
}

var (
	mu      sync.RWMutex
	current = copyDefaults()
)

func copyDefaults() map[Tier]time.Duration {
	m := make(map[Tier]time.Duration, len(defaults))
	for k, v := range defaults {
		m[k] = v
	}
	return m
}

// Get returns the configured duration for tier, or zero for an unknown tier.
func Get(t Tier) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return current[t]
}

func Ping() time.Duration     { return Get(TierPing) }
func Short() time.Duration    { return Get(TierShort) }
func Medium() time.Duration   { return Get(TierMedium) }
func Long() time.Duration     { return Get(TierLong) }
func Upstream() time.Duration { return Get(TierUpstream) }

// Configure overrides tiers. Non-positive durations and unknown tiers are ignored.
func Configure(overrides map[Tier]time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	for t, d := range overrides {
		if _, known := defaults[t]; known && d > 0 {
			current[t] = d
		}
	}
}

// Reset restores the defaults. Tests call it in t.Cleanup.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = copyDefaults()
}

// ConfigureFromEnv applies GROUPFLIGHT_TIMEOUT_* overrides such as "750ms"
// or "1m". Unparseable values are logged and skipped. It returns the tiers
// that were changed.
func ConfigureFromEnv(logger *zap.Logger) []Tier {
	overrides := make(map[Tier]time.Duration)
	for t, key := range envKeys {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			if logger != nil {
				logger.Warn("ignoring invalid timeout override", zap.String("env", key), zap.String("value", v))
			}
			continue
		}
		overrides[t] = d
	}
	Configure(overrides)

	changed := make([]Tier, 0, len(overrides))
	for t := range overrides {
		changed = append(changed, t)
	}
	return changed
}

// Current returns a snapshot of every tier, for startup logging.
func Current() map[Tier]time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[Tier]time.Duration, len(current))
	for k, v := range current {
		out[k] = v
	}
	return out
}

// WithTimeout is context.WithTimeout whose cancel func logs when the
// deadline was the reason the operation ended.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "delete event")
//	defer cancel()
func WithTimeout(parent context.Context, d time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, d)
	return ctx, func() {
		if log != nil && ctx.Err() == context.DeadlineExceeded {
			log.Warn("operation timed out", zap.String("operation", operation), zap.Duration("timeout", d))
		}
		cancel()
	}
}
