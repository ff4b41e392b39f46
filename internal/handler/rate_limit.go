package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	rateWindow   = time.Minute
	sweepEvery   = 5 * time.Minute
	tooManyTries = "Too many requests. Please try again later."
)

// RateLimiter caps public form submissions per client address over a sliding
// one-minute window. Clients are identified by the address the nearest
// trusted proxy appended to X-Forwarded-For, or by the peer address.
type RateLimiter struct {
	limit          int
	trustedProxies int
	now            func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter returns a limiter allowing limit requests per client per
// minute behind one reverse proxy, and starts its sweeper. Call Close when
// done.
func NewRateLimiter(limit int) *RateLimiter {
	rl := &RateLimiter{
		limit:          limit,
		trustedProxies: 1,
		now:            time.Now,
		hits:           make(map[string][]time.Time),
		stop:           make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Close stops the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// allow records a hit for client at now. When the client is over the limit
// it returns false and how long until the oldest hit leaves the window.
func (rl *RateLimiter) allow(client string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := inWindow(rl.hits[client], now)
	if len(recent) >= rl.limit {
		rl.hits[client] = recent
		return false, recent[0].Add(rateWindow).Sub(now)
	}
	rl.hits[client] = append(recent, now)
	return true, 0
}

// inWindow drops hits older than rateWindow, reusing the slice.
func inWindow(hits []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rateWindow)
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// sweep forgets clients with no hits inside the window.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for client, hits := range rl.hits {
		if recent := inWindow(hits, now); len(recent) > 0 {
			rl.hits[client] = recent
		} else {
			delete(rl.hits, client)
		}
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

// Middleware rejects over-limit requests with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(rl.clientAddr(r), rl.now())
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
			writeError(w, http.StatusTooManyRequests, tooManyTries)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// retryAfterSeconds rounds wait up to whole seconds, minimum one.
func retryAfterSeconds(wait time.Duration) int {
	secs := int((wait + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// clientAddr reads the X-Forwarded-For entry written by the outermost trusted
// proxy. Entries to its left are client-controlled and ignored.
func (rl *RateLimiter) clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxies > 0 {
		parts := strings.Split(xff, ",")
		if i := len(parts) - rl.trustedProxies; i >= 0 {
			if addr := strings.TrimSpace(parts[i]); addr != "" {
				return addr
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
