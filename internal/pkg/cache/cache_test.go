package cache

import (
	"testing"
	"time"
)

func TestGetMiss(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unset key")
	}
}

func TestSetThenGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", 42)

	v, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if v.(int) != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

func TestExpiry(t *testing.T) {
	c := New(time.Millisecond)
	c.Set("key", "value")
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestInvalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", "value")
	c.Invalidate("key")

	if _, ok := c.Get("key"); ok {
		t.Fatal("expected miss after Invalidate")
	}
}
