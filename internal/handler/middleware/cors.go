package middleware

import (
	"log/slog"
	"slices"

	"festival-flash-sale/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Always exposed, whatever CORS_EXPOSE_HEADERS says.
var requiredExposeHeaders = []string{"Retry-After", "X-Request-ID"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, requiredExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// gin-contrib/cors rejects "*" mixed with explicit origins, and browsers
	// reject a wildcard with credentials.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"AllowOrigins", cfg.AllowOrigins,
		"AllowAllOrigins", corsCfg.AllowAllOrigins,
	)
	return cors.New(corsCfg)
}

func withHeaders(headers []string, required ...string) []string {
	out := slices.Clone(headers)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
