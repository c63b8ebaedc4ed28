package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// CounterStore counts requests per client inside a rolling window. The
// default is in-process; a shared store can be swapped in for
// multi-instance deployments (the in-process one is explicitly not
// linearizable across instances).
type CounterStore interface {
	// Hit records a request for key at now and returns how many requests
	// from key fall inside the window ending at now, including this one.
	Hit(key string, now time.Time, window time.Duration) int
}

// SlidingWindow is the in-process CounterStore: per-key timestamps,
// pruned as the window advances.
type SlidingWindow struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewSlidingWindow() *SlidingWindow {
	return &SlidingWindow{hits: make(map[string][]time.Time)}
}

func (s *SlidingWindow) Hit(key string, now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-window)
	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	s.hits[key] = kept
	return len(kept)
}

// RateLimit rejects clients exceeding limit requests per window with 429,
// before any pipeline work starts.
func RateLimit(store CounterStore, limit int, window time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if store.Hit(key, time.Now(), window) > limit {
				WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many requests; slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
