package cache

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(ctx, "k", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want present", ok, err)
	}
	if string(data) != `{"v":1}` {
		t.Errorf("Get(k) = %s", data)
	}

	// Overwrite replaces wholesale.
	if err := s.Set(ctx, "k", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, _, _ = s.Get(ctx, "k")
	if string(data) != `{"v":2}` {
		t.Errorf("Get(k) after overwrite = %s", data)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("Get(k) present after Delete")
	}

	// Deleting an absent key is fine.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(absent) error: %v", err)
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, k, json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%4))
			for j := 0; j < 100; j++ {
				_ = s.Set(ctx, key, json.RawMessage(`{}`))
				_, _, _ = s.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}
