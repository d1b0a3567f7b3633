package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts panics and unhandled fiber errors into the
// standard envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		return c.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}

// APIKeyMiddleware guards the analytics surface. The key travels in the
// X-API-Key header.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(ErrorResponse(503, "Analytics API key is not configured"))
		}
		provided := c.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(401, "Invalid or missing API key"))
		}
		return c.Next()
	}
}
