package middleware

import (
	"time"

	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "request_id"

// RequestID returns the id assigned by RequestLogger, or "" outside it.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		return id
	}
	return ""
}

// RequestLogger assigns every request an id and logs it once it completes.
// A well-formed ULID sent by the client in X-Request-ID is kept.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if !util.IsULID(requestID) {
			requestID = util.NewULID()
		}
		c.Locals(requestIDLocal, requestID)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			// Render now so the logged status is the one the client sees.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		return nil
	}
}
