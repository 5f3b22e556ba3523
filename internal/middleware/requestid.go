package middleware

import (
	"quiz-xmlgen/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the locals key under which the per-request ULID is stored
const RequestIDKey = "request_id"

// RequestID assigns a ULID to every request and echoes it back in the
// X-Request-ID response header so downloads can be correlated with logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// GetRequestID returns the request id assigned by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
