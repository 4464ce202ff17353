package http

import (
	"log"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"fincon/domain"
)

// RateLimitMiddleware rejects callers over their quota with 429. Callers are
// identified by client IP, which chi's RealIP middleware resolves from
// X-Forwarded-For and X-Real-IP. If the limiter itself fails the request is
// let through.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				log.Printf("Warning: rate limiter unavailable, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

			if !decision.Allowed {
				h.Set("Retry-After", strconv.Itoa(retryAfterSeconds(decision.ResetAt)))
				writeDomainError(w, domain.ErrRateLimitExceeded)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func retryAfterSeconds(resetAt time.Time) int {
	secs := int(math.Ceil(time.Until(resetAt).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
