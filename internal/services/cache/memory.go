package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultTTL applies when Set is called without a TTL.
const DefaultTTL = 30 * time.Minute

// MemoryCache is a size-bounded in-memory cache. When full it evicts expired
// entries first and then the least recently used ones.
type MemoryCache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	lru      *list.List
	maxBytes int64
	size     int64
	stats    Stats
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type entry struct {
	key    string
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes. A
// non-positive size disables the bound.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:    make(map[string]*list.Element),
		lru:      list.New(),
		maxBytes: maxSizeMB * 1024 * 1024,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.cleanupLoop(time.Minute)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	el, ok := mc.items[key]
	if !ok {
		mc.stats.Misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if mc.now().After(e.expiry) {
		mc.removeElement(el)
		mc.stats.Misses++
		return nil, false
	}

	mc.lru.MoveToFront(el)
	mc.stats.Hits++
	return e.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	e := &entry{
		key:    key,
		value:  value,
		expiry: mc.now().Add(ttl),
		size:   int64(len(key) + len(value)),
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.items[key]; ok {
		mc.removeElement(el)
	}
	if mc.maxBytes > 0 && e.size > mc.maxBytes {
		return nil
	}
	mc.makeRoom(e.size)

	mc.items[key] = mc.lru.PushFront(e)
	mc.size += e.size
	mc.stats.Sets++
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if el, ok := mc.items[key]; ok {
		mc.removeElement(el)
	}
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items = make(map[string]*list.Element)
	mc.lru.Init()
	mc.size = 0
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	s := mc.stats
	s.Entries = len(mc.items)
	s.Size = mc.size
	s.MaxSize = mc.maxBytes
	return s
}

// Stop ends the background cleanup. It is safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

func (mc *MemoryCache) cleanupLoop(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpired()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

// removeExpired must be called with mu held.
func (mc *MemoryCache) removeExpired() {
	now := mc.now()
	for _, el := range mc.items {
		if now.After(el.Value.(*entry).expiry) {
			mc.removeElement(el)
			mc.stats.Evictions++
		}
	}
}

// makeRoom must be called with mu held.
func (mc *MemoryCache) makeRoom(needed int64) {
	if mc.maxBytes <= 0 || mc.size+needed <= mc.maxBytes {
		return
	}
	mc.removeExpired()
	for mc.size+needed > mc.maxBytes {
		oldest := mc.lru.Back()
		if oldest == nil {
			return
		}
		mc.removeElement(oldest)
		mc.stats.Evictions++
	}
}

func (mc *MemoryCache) removeElement(el *list.Element) {
	e := mc.lru.Remove(el).(*entry)
	delete(mc.items, e.key)
	mc.size -= e.size
}
