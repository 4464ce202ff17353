package http

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 30 * time.Minute

// Decision is the outcome of one quota check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter enforces a fixed number of requests per caller per window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type clientWindow struct {
	count int
	start time.Time
}

// RateLimiter keeps quota windows in process memory. Counters reset when the
// process restarts.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	clients     map[string]*clientWindow
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:       limit,
		window:      window,
		clients:     make(map[string]*clientWindow),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup drops windows that have already ended.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, w := range r.clients {
		if now.Sub(w.start) >= r.window {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow counts a request against key. The window opens on the first request
// and the count resets once it has elapsed.
func (r *RateLimiter) Allow(_ context.Context, key string) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, exists := r.clients[key]
	if !exists || now.Sub(w.start) >= r.window {
		w = &clientWindow{start: now}
		r.clients[key] = w
	}

	d := Decision{Limit: r.limit, ResetAt: w.start.Add(r.window)}
	if w.count >= r.limit {
		return d, nil
	}

	w.count++
	d.Allowed = true
	d.Remaining = r.limit - w.count
	return d, nil
}

func (r *RateLimiter) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
