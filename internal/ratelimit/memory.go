package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/preston-bernstein/nhl-query-service/internal/timeutil"
)

const (
	defaultClientShards   = 16
	defaultJanitorEvery   = 5 * time.Minute
	fallbackIdleRetention = time.Hour
)

type counter struct {
	start time.Time
	count int
}

type clientState struct {
	counters []counter
	lastSeen time.Time
}

type clientShard struct {
	mu      sync.Mutex
	clients map[string]*clientState
}

// MemoryLimiter keeps fixed-window counters in process memory.
type MemoryLimiter struct {
	windows []Window
	shards  []*clientShard
	now     func() time.Time
	idleTTL time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// MemoryOption customizes a MemoryLimiter.
type MemoryOption func(*MemoryLimiter)

// WithClock overrides the limiter time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(l *MemoryLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

// NewMemoryLimiter constructs a limiter for the given windows.
func NewMemoryLimiter(windows []Window, opts ...MemoryOption) *MemoryLimiter {
	l := &MemoryLimiter{
		windows: append([]Window(nil), windows...),
		shards:  make([]*clientShard, defaultClientShards),
		now:     time.Now,
		idleTTL: longestWindow(windows),
		stop:    make(chan struct{}),
	}
	if l.idleTTL <= 0 {
		l.idleTTL = fallbackIdleRetention
	}
	for i := range l.shards {
		l.shards[i] = &clientShard{clients: make(map[string]*clientState)}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *MemoryLimiter) shardFor(key string) *clientShard {
	return l.shards[xxhash.Sum64String(key)%uint64(len(l.shards))]
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	now := l.now()
	sh := l.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	state, ok := sh.clients[key]
	if !ok {
		state = &clientState{counters: make([]counter, len(l.windows))}
		sh.clients[key] = state
	}
	state.lastSeen = now

	counts := make([]int, len(l.windows))
	for i, w := range l.windows {
		start := timeutil.WindowStart(now, w.Length)
		if !state.counters[i].start.Equal(start) {
			state.counters[i] = counter{start: start}
		}
		counts[i] = state.counters[i].count
	}

	d := decide(l.windows, counts, now)
	if d.Allowed {
		for i := range state.counters {
			state.counters[i].count++
		}
	}
	return d, nil
}

// Cleanup drops clients that have been idle longer than the longest window.
func (l *MemoryLimiter) Cleanup() {
	cutoff := l.now().Add(-l.idleTTL)
	for _, sh := range l.shards {
		sh.mu.Lock()
		for k, st := range sh.clients {
			if st.lastSeen.Before(cutoff) {
				delete(sh.clients, k)
			}
		}
		sh.mu.Unlock()
	}
}

// StartJanitor runs Cleanup every interval until ctx is done or Close is called.
func (l *MemoryLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = defaultJanitorEvery
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.stop:
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// Close stops the janitor. It is safe to call more than once.
func (l *MemoryLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *MemoryLimiter) clientCount() int {
	n := 0
	for _, sh := range l.shards {
		sh.mu.Lock()
		n += len(sh.clients)
		sh.mu.Unlock()
	}
	return n
}
