package middleware

import (
	"arcana/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Correlation attaches a correlation id to every request's user context and
// echoes it in the response headers. An inbound X-Correlation-ID is reused so
// callers can stitch logs across services.
func Correlation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Correlation-ID")
		if id == "" {
			id = observability.GenerateCorrelationID()
		}
		c.SetUserContext(observability.WithCorrelationID(c.UserContext(), id))
		c.Set("X-Correlation-ID", id)
		return c.Next()
	}
}
