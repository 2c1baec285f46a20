package schedcache_test

import (
	"testing"
	"time"

	"smart-scheduler/internal/schedcache"
	"smart-scheduler/internal/scheduler"
)

func TestCache(t *testing.T) {
	c := schedcache.New(4, time.Minute)

	key := schedcache.Key([]byte(`{"tasks":[]}`))
	if _, ok := c.Get(key); ok {
		t.Fatalf("empty cache must miss")
	}

	out := scheduler.ScheduleOutput{Summary: scheduler.Summary{TotalTasks: 3}}
	c.Add(key, out)

	got, ok := c.Get(key)
	if !ok || got.Summary.TotalTasks != 3 {
		t.Errorf("expected cached response, got %+v ok=%v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestKey_DiffersPerBody(t *testing.T) {
	a := schedcache.Key([]byte(`{"tasks":[{"title":"a"}]}`))
	b := schedcache.Key([]byte(`{"tasks":[{"title":"b"}]}`))
	if a == b {
		t.Errorf("different bodies must hash to different keys")
	}
	if a != schedcache.Key([]byte(`{"tasks":[{"title":"a"}]}`)) {
		t.Errorf("identical bodies must hash to the same key")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := schedcache.New(4, 10*time.Millisecond)

	key := schedcache.Key([]byte("x"))
	c.Add(key, scheduler.ScheduleOutput{})

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Errorf("entry must expire after the TTL")
	}
}
