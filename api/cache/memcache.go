package cache

import (
	"context"
	"sync"
	"time"
)

// MemCache is the small in-process cache sitting in front of Redis.
type MemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
	Close()
}

const cleanupInterval = 5 * time.Minute

// In-memory cache with short TTLs to minimize Redis calls.
type memCache struct {
	entries       sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheItem struct {
	value   any
	expires time.Time
}

// NewMemCache creates a new memory cache and starts its cleanup worker.
func NewMemCache() MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &memCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *memCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup removes every expired key.
func (mc *memCache) cleanup() {
	now := time.Now()
	mc.entries.Range(func(key, value any) bool {
		item := value.(*memCacheItem)
		if now.After(item.expires) {
			mc.entries.Delete(key)
		}
		return true
	})
}

// Close shuts down the cleanup worker.
func (mc *memCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the value stored under key, or nil when absent or expired.
func (mc *memCache) Get(key string) any {
	value, exists := mc.entries.Load(key)
	if !exists {
		return nil
	}

	item := value.(*memCacheItem)

	if time.Now().After(item.expires) {
		mc.entries.Delete(key)
		return nil
	}

	return item.value
}

// Set stores a value under key for the given TTL.
func (mc *memCache) Set(key string, value any, ttl time.Duration) {
	mc.entries.Store(key, &memCacheItem{
		value:   value,
		expires: time.Now().Add(ttl),
	})
}
