package middleware

import (
	"log/slog"
	"slices"

	"skill-swap-core/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send Idempotency-Key and read
// X-Request-ID, whatever the configured lists say.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, HeaderIdempotencyKey),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, HeaderRequestID),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", corsCfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	if slices.Contains(headers, h) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
