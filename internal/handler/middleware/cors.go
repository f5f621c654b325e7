package middleware

import (
	"log/slog"
	"slices"

	"roadside-marketplace/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies CORS_* settings. A "*" origin switches to
// allow-all, which browsers refuse to combine with credentials, so
// credentials are turned off in that case.
func NewCORSMiddleware(cfg config.CORSConfig, log *slog.Logger) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    appendMissing(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
		if c.AllowCredentials {
			log.Warn("CORS wildcard origin disables credentials")
			c.AllowCredentials = false
		}
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	log.Info("CORS configured", "origins", cfg.AllowOrigins, "credentials", c.AllowCredentials)
	return cors.New(c)
}

func appendMissing(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(slices.Clone(list), v)
}
