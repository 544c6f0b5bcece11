package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	notesv1 "notes-api/pkg/api/notes/v1"
)

// RateLimit ограничивает количество запросов (rate limiting)
// rps - запросов в секунду, burst - разрешает кратковременные всплески
func RateLimit(rps int, burst int) func(http.Handler) http.Handler {
	// Значения по умолчанию если не указаны
	if rps <= 0 {
		rps = 100
	}
	// Всплеск не меньше rps, чтобы секундная пачка запросов проходила целиком
	if burst < rps {
		burst = rps
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				slog.WarnContext(r.Context(), "rate limit exceeded",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr)
				writeError(w, http.StatusTooManyRequests, notesv1.ErrorDetails{
					Detail:            "Too Many Requests",
					InternalErrorCode: notesv1.ErrorCodeRateLimited,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
