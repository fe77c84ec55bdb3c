package store

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

const defaultShards = 32

type entry struct {
	payload    []byte
	insertedAt time.Time
	ttl        time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.insertedAt) >= e.ttl
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// MemoryStore keeps upstream payloads in memory keyed by normalized request.
// Keys are spread over independently locked shards, so unrelated keys rarely contend.
// The store has no size bound.
type MemoryStore struct {
	shards []*shard
	now    func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore reading time from now.
// A nil now uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	shards := make([]*shard, defaultShards)
	for i := range shards {
		shards[i] = &shard{entries: make(map[string]entry)}
	}
	return &MemoryStore{shards: shards, now: now}
}

func (s *MemoryStore) shardFor(key string) *shard {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

// Get returns the payload cached under key when it has not yet expired.
// Expired entries are removed on access. Callers must not modify the returned slice.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	sh := s.shardFor(key)
	now := s.now()

	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expired(now) {
		return e.payload, true
	}

	sh.mu.Lock()
	// Another writer may have refreshed the key since the read.
	if cur, ok := sh.entries[key]; ok && cur.insertedAt.Equal(e.insertedAt) {
		delete(sh.entries, key)
	}
	sh.mu.Unlock()
	return nil, false
}

// Set stores a copy of payload under key for ttl, replacing any existing entry.
// A non-positive ttl removes the key instead.
func (s *MemoryStore) Set(key string, payload []byte, ttl time.Duration) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if ttl <= 0 {
		delete(sh.entries, key)
		return
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	sh.entries[key] = entry{payload: buf, insertedAt: s.now(), ttl: ttl}
}

// Len returns the number of entries held, including ones that expired but were not yet read.
func (s *MemoryStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Purge drops every entry and returns how many were removed.
func (s *MemoryStore) Purge() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.entries)
		sh.entries = make(map[string]entry)
		sh.mu.Unlock()
	}
	return n
}
