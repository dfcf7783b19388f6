package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("tips", 3, "item-0")
	b := CacheKey("tips", 3, "item-0")
	if a != b {
		t.Errorf("Same inputs must key identically: %s vs %s", a, b)
	}

	if CacheKey("tips", 3, "item-0") == CacheKey("tips", 4, "item-0") {
		t.Errorf("A new generation must produce a new key")
	}
	if CacheKey("tips", 3, "item-0") == CacheKey("tips", 3, "item-1") {
		t.Errorf("Different items must produce different keys")
	}
	if CacheKey("tips", 3, "item-0") == CacheKey("booster", 3, "item-0") {
		t.Errorf("Different operations must produce different keys")
	}
}

func TestDoSingleFlight(t *testing.T) {
	cache := NewResultCache(nil, time.Minute, nil)

	var calls int32
	fn := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return map[string]string{"tip": "ဗီဒီယို တိုတိုထားပါ"}, nil
	}

	var wg sync.WaitGroup
	results := make([]json.RawMessage, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := cache.Do(context.Background(), "pre_upload_tips", "key-1", fn)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = data
		}(i)
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected exactly one upstream call, got %d", got)
	}
	for i, data := range results {
		if string(data) != string(results[0]) {
			t.Errorf("Waiter %d got a different payload", i)
		}
	}
}

func TestDoErrorsAreSharedButNotCached(t *testing.T) {
	cache := NewResultCache(nil, time.Minute, nil)
	boom := errors.New("upstream down")

	var calls int32
	failing := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	}

	if _, err := cache.Do(context.Background(), "recommendations", "key-err", failing); !errors.Is(err, boom) {
		t.Fatalf("Expected the upstream error, got %v", err)
	}

	// a second attempt retries instead of replaying the failure
	succeeding := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"ok"}, nil
	}
	data, err := cache.Do(context.Background(), "recommendations", "key-err", succeeding)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if string(data) != `["ok"]` {
		t.Errorf("Unexpected payload %s", data)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", got)
	}
}

func TestDoContextCancelledWhileWaiting(t *testing.T) {
	cache := NewResultCache(nil, time.Minute, nil)

	release := make(chan struct{})
	go cache.Do(context.Background(), "analysis", "key-slow", func() (interface{}, error) {
		<-release
		return "done", nil
	})

	// give the first caller time to register as in-flight
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Do(ctx, "analysis", "key-slow", func() (interface{}, error) {
		return "never", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled for a cancelled waiter, got %v", err)
	}

	close(release)
}
