package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureRequestID stamps every request with an ID so access-log lines for
// the same call can be correlated. Clients may supply their own via the
// X-Request-ID header; otherwise one is generated.
func EnsureRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Keep it available to handlers and echo it to the client.
		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}
