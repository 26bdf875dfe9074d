package infra

import (
	"context"
	"testing"
	"time"
)

// --- Cache ---

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("industry:기타:7:3", []string{"a", "b"})

	v, ok := c.Get("industry:기타:7:3")
	if !ok {
		t.Fatal("expected cache hit")
	}
	items, ok := v.([]string)
	if !ok || len(items) != 2 {
		t.Errorf("unexpected cached value: %v", v)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Error("expected cache miss for absent key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Minute)
	c.SetWithTTL("short", "v", 30*time.Millisecond)

	if _, ok := c.Get("short"); !ok {
		t.Fatal("expected hit before expiry")
	}
	time.Sleep(60 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("expected miss after expiry")
	}
}

func TestCacheInvalidateAndFlush(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after Invalidate")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to survive Invalidate of a")
	}

	c.Flush()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Flush, got %d entries", c.Len())
	}
}

func TestCacheCleanup(t *testing.T) {
	c := NewCache(time.Minute)
	c.SetWithTTL("stale", "v", 10*time.Millisecond)
	c.Set("fresh", "v")

	time.Sleep(30 * time.Millisecond)
	c.Cleanup()

	if c.Len() != 1 {
		t.Errorf("expected 1 entry after Cleanup, got %d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("expected fresh entry to survive Cleanup")
	}
}

// --- RateLimiter ---

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("burst of 3 should not block, took %v", elapsed)
	}
}

func TestRateLimiterBlocksWhenExhausted(t *testing.T) {
	rl := NewRateLimiter(1, 200*time.Millisecond)
	ctx := context.Background()

	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("first Wait: %v", err)
	}
	start := time.Now()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("second Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("expected second Wait to block for a refill period, took %v", elapsed)
	}
}

func TestRateLimiterContextCancel(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("first Wait: %v", err)
	}
	if err := rl.Wait(ctx); err == nil {
		t.Error("expected context error when no tokens refill")
	}
}
