package repository

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {

	cache := NewMemoryCache()

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	if err := cache.Set("k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := cache.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected v, got %q (ok=%v)", got, ok)
	}

	if err := cache.Delete("k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {

	cache := NewMemoryCache()
	now := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_ = cache.Set("session", "alice", time.Minute)

	now = now.Add(30 * time.Second)
	if _, ok := cache.Get("session"); !ok {
		t.Fatal("expected hit before ttl")
	}

	now = now.Add(30 * time.Second)
	if _, ok := cache.Get("session"); ok {
		t.Fatal("expected miss once ttl elapsed")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired key to be evicted, len=%d", cache.Len())
	}
}
