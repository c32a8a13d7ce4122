package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if Ping() != 2*time.Second {
		t.Errorf("Ping() = %v", Ping())
	}
	if Medium() != 10*time.Second {
		t.Errorf("Medium() = %v", Medium())
	}
	if Upstream() != 15*time.Second {
		t.Errorf("Upstream() = %v", Upstream())
	}
}

func TestConfigure_IgnoresZeroAndUnknown(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(map[Tier]time.Duration{
		TierShort:        time.Second,
		TierLong:         0,
		Tier("nonsense"): time.Minute,
	})

	if Short() != time.Second {
		t.Errorf("Short() = %v, want 1s", Short())
	}
	if Long() != 30*time.Second {
		t.Errorf("Long() = %v, want default", Long())
	}
	if _, ok := Current()[Tier("nonsense")]; ok {
		t.Error("unknown tier should not be stored")
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("GROUPFLIGHT_TIMEOUT_PING", "500ms")
	t.Setenv("GROUPFLIGHT_TIMEOUT_MEDIUM", "soon")

	changed := ConfigureFromEnv(zap.NewNop())
	if len(changed) != 1 || changed[0] != TierPing {
		t.Errorf("changed = %v, want [ping]", changed)
	}
	if Ping() != 500*time.Millisecond {
		t.Errorf("Ping() = %v", Ping())
	}
	if Medium() != 10*time.Second {
		t.Errorf("Medium() = %v, want default", Medium())
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v", ctx.Err())
	}
}
