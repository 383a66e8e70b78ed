package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

// withRateLimit answers 429 with message once the client, keyed by IP, is
// over l. Preflight requests are not counted.
func (h *Handler) withRateLimit(l limiter.Limiter, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := utils.ClientIP(r)
			allowed, retryAfter := l.Allow(clientIP)
			if !allowed {
				logger.FromRequest(r).Warn().Str("client_ip", clientIP).Dur("retry_after", retryAfter).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeErrorMessage(w, message, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
