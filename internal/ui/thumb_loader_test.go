package ui

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestThumbLoader_LoadsOnceAndCaches(t *testing.T) {
	var loads int32
	loader := newThumbLoader(func(key string) (fyne.Resource, error) {
		atomic.AddInt32(&loads, 1)
		return fyne.NewStaticResource(key, []byte("img")), nil
	})
	loader.post = func(fn func()) { fn() }

	var ready int32
	if res := loader.Get("a", func() { atomic.AddInt32(&ready, 1) }); res != nil {
		t.Fatal("First Get should return nil while loading")
	}

	waitFor(t, func() bool { return atomic.LoadInt32(&ready) == 1 })

	res := loader.Get("a", nil)
	if res == nil || res.Name() != "a" {
		t.Fatalf("Expected cached resource 'a', got %v", res)
	}
	if atomic.LoadInt32(&loads) != 1 {
		t.Errorf("Expected exactly one load, got %d", atomic.LoadInt32(&loads))
	}
}

func TestThumbLoader_FailuresAreNotRetriedUntilForget(t *testing.T) {
	var loads int32
	loader := newThumbLoader(func(key string) (fyne.Resource, error) {
		atomic.AddInt32(&loads, 1)
		return nil, errors.New("broken")
	})
	loader.post = func(fn func()) { fn() }

	loader.Get("bad", nil)
	waitFor(t, func() bool {
		loader.mu.Lock()
		defer loader.mu.Unlock()
		return loader.failed["bad"]
	})

	loader.Get("bad", nil)
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&loads) != 1 {
		t.Errorf("Failed key should not be reloaded, got %d loads", atomic.LoadInt32(&loads))
	}

	loader.Forget()
	loader.Get("bad", nil)
	waitFor(t, func() bool { return atomic.LoadInt32(&loads) == 2 })
}

func TestThumbLoader_EmptyKey(t *testing.T) {
	loader := newThumbLoader(func(key string) (fyne.Resource, error) {
		t.Error("load should not be called for empty key")
		return nil, nil
	})
	if loader.Get("", nil) != nil {
		t.Error("Expected nil for empty key")
	}
}

func TestThumbLoader_EvictsOldestWhenFull(t *testing.T) {
	loader := newThumbLoader(func(key string) (fyne.Resource, error) {
		return fyne.NewStaticResource(key, []byte("img")), nil
	})
	loader.post = func(fn func()) { fn() }
	loader.capacity = 2

	cached := func(key string) bool {
		loader.mu.Lock()
		defer loader.mu.Unlock()
		_, ok := loader.cache[key]
		return ok
	}

	for _, key := range []string{"a", "b", "c"} {
		loader.Get(key, nil)
		waitFor(t, func() bool { return cached(key) })
	}

	if cached("a") {
		t.Error("Oldest entry should have been evicted")
	}
	if !cached("b") || !cached("c") {
		t.Error("Newer entries should stay cached")
	}
}
