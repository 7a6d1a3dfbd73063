// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS. With no explicit origins every
// origin is accepted with credentials (the origin is echoed back, since
// fiber refuses "*" together with credentials); deployments should set
// CORS_ALLOW_ORIGINS.
func CorsMiddleware(allowOrigins []string) fiber.Handler {
	cfg := cors.Config{
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	}
	if len(allowOrigins) == 0 {
		cfg.AllowOriginsFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = strings.Join(allowOrigins, ", ")
	}
	return cors.New(cfg)
}
