package server

import (
	"net/http"
	"sync/atomic"
)

// analysisLimiter caps simultaneous solver runs. Enumeration is CPU-bound,
// so admitting unbounded concurrent analyses degrades every request; excess
// requests are rejected immediately instead.
//
// The limiter is a lock-free counting semaphore.
type analysisLimiter struct {
	limit   int64
	current int64
}

// newAnalysisLimiter creates a limiter. A non-positive limit disables it.
func newAnalysisLimiter(limit int) *analysisLimiter {
	return &analysisLimiter{limit: int64(limit)}
}

// acquire attempts to claim a slot. On success the caller must release.
func (l *analysisLimiter) acquire() bool {
	if l.limit <= 0 {
		return true
	}
	if atomic.AddInt64(&l.current, 1) > l.limit {
		atomic.AddInt64(&l.current, -1)
		return false
	}
	return true
}

// release returns a slot.
func (l *analysisLimiter) release() {
	if l.limit <= 0 {
		return
	}
	atomic.AddInt64(&l.current, -1)
}

// withAnalysisLimit rejects requests with 503 while the solver is saturated.
func withAnalysisLimit(l *analysisLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.acquire() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"too many concurrent analyses, retry later"}`))
			return
		}
		defer l.release()
		next(w, r)
	}
}
