package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestGetLimiter_ReusesPerSource(t *testing.T) {
	l := NewSourceLimiterWithDefaults()

	a := l.GetLimiter("wikipedia")
	b := l.GetLimiter("wikipedia")
	if a != b {
		t.Error("same source returned different limiters")
	}

	other := l.GetLimiter("other")
	if other == a {
		t.Error("different sources share a limiter")
	}
}

func TestSetSourceLimit(t *testing.T) {
	l := NewSourceLimiterWithDefaults()
	l.SetSourceLimit("wikipedia", 1, 1)

	limiter := l.GetLimiter("wikipedia")
	if limiter.Limit() != 1 || limiter.Burst() != 1 {
		t.Errorf("limit %v burst %d, want 1/1", limiter.Limit(), limiter.Burst())
	}
}

func TestWait_RespectsContext(t *testing.T) {
	l := NewSourceLimiterWithDefaults()
	// Drain the burst so the next Wait would block.
	l.SetSourceLimit("slow", 0.001, 1)
	ctx := context.Background()
	if err := l.Wait(ctx, "slow"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "slow"); err == nil {
		t.Error("expected context deadline error on exhausted limiter")
	}
}
