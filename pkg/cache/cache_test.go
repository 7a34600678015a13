package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 10, 30, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory(time.Hour)

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"slice", "/items:{}", []string{"a", "b"}},
		{"string", "/items/1:", "test"},
		{"map", "/traders:", map[string]int{"celeste": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Set(tt.key, tt.value)

			got, ok := c.Get(tt.key)
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.value) {
				t.Errorf("Get() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestMemory_Miss(t *testing.T) {
	c := NewMemory(time.Hour)
	got, ok := c.Get("missing")
	if ok {
		t.Error("Get() returned true for missing key")
	}
	if got != nil {
		t.Errorf("Get() = %v, want nil", got)
	}
}

func TestMemory_Expiration(t *testing.T) {
	clock := newFakeClock()
	ttl := 5 * time.Minute
	c := NewMemory(ttl, WithClock(clock.Now))

	c.Set("key", "value")

	if got, ok := c.Get("key"); !ok || got != "value" {
		t.Fatalf("Get() = %v, %v; want value, true", got, ok)
	}

	// Exactly at expiry the entry is still valid.
	clock.Advance(ttl)
	if _, ok := c.Get("key"); !ok {
		t.Fatal("Get() at expiry should still hit")
	}

	clock.Advance(time.Nanosecond)
	if _, ok := c.Get("key"); ok {
		t.Error("Get() returned true for expired key")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on lookup, Len() = %d", c.Len())
	}
}

func TestMemory_ExpiredBehavesLikeMissing(t *testing.T) {
	clock := newFakeClock()
	c := NewMemory(time.Minute, WithClock(clock.Now))

	c.Set("stale", 1)
	clock.Advance(2 * time.Minute)

	v1, ok1 := c.Get("stale")
	v2, ok2 := c.Get("never-set")
	if ok1 != ok2 || v1 != v2 {
		t.Errorf("expired lookup = (%v, %v), missing lookup = (%v, %v)", v1, ok1, v2, ok2)
	}
}

func TestMemory_SetRefreshesExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewMemory(time.Minute, WithClock(clock.Now))

	c.Set("key", "old")
	clock.Advance(50 * time.Second)
	c.Set("key", "new")
	clock.Advance(50 * time.Second)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("overwritten entry should have a fresh expiry")
	}
	if got != "new" {
		t.Errorf("Get() = %v, want new", got)
	}
}

func TestMemory_Clear(t *testing.T) {
	c := NewMemory(time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() hit after Clear")
	}
}

func TestNewMemory_DefaultTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{"zero", 0, DefaultTTL},
		{"negative", -time.Second, DefaultTTL},
		{"explicit", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMemory(tt.ttl).TTL(); got != tt.want {
				t.Errorf("TTL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMemory_Concurrent(t *testing.T) {
	c := NewMemory(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			c.Set(key, i)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
}

func TestNull(t *testing.T) {
	c := NewNull()

	// Get always returns miss
	if _, hit := c.Get("key"); hit {
		t.Error("Null.Get should always return miss")
	}

	c.Set("key", "value")

	// Still a miss after Set
	if _, hit := c.Get("key"); hit {
		t.Error("Null should not store data")
	}

	// Clear does nothing
	c.Clear()
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		params   map[string]any
		want     string
	}{
		{"nil params", "/items/anvil", nil, "/items/anvil:"},
		{"empty params", "/items", map[string]any{}, "/items:{}"},
		{"single", "/items", map[string]any{"type": "weapon"}, `/items:{"type":"weapon"}`},
		{
			"sorted",
			"/items",
			map[string]any{"type": "weapon", "page": 1, "rarity": "Rare"},
			`/items:{"page":1,"rarity":"Rare","type":"weapon"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.endpoint, tt.params); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_OrderIndependent(t *testing.T) {
	a := map[string]any{}
	a["a"] = 1
	a["b"] = 2

	b := map[string]any{}
	b["b"] = 2
	b["a"] = 1

	if Key("items", a) != Key("items", b) {
		t.Errorf("Key() differs for reordered params: %q vs %q", Key("items", a), Key("items", b))
	}
}

func TestKey_DistinguishesEndpointsAndValues(t *testing.T) {
	base := Key("/items", map[string]any{"type": "weapon"})

	if base == Key("/quests", map[string]any{"type": "weapon"}) {
		t.Error("different endpoints should produce different keys")
	}
	if base == Key("/items", map[string]any{"type": "armor"}) {
		t.Error("different values should produce different keys")
	}
	if base == Key("/items", map[string]any{}) {
		t.Error("forced type should not collide with unfiltered key")
	}
}
