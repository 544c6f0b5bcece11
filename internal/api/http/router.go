package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"notes-api/internal/api/http/middleware"
	"notes-api/internal/config"
)

// WithMiddleware оборачивает mux в цепочку middleware.
// Порядок выполнения: CORS → RequestID → Logging → RateLimit → Recover → mux.
func WithMiddleware(mux http.Handler, cfg *config.ConfigGateway, logger *slog.Logger) http.Handler {
	handler := middleware.Recover(mux)
	handler = middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = setupCORS(cfg).Handler(handler)

	return handler
}

// setupCORS разрешает заданные origin с credentials, любые методы и заголовки
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	allowed := origins[:0]
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed = append(allowed, origin)
		}
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Location"},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
