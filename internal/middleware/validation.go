package middleware

import (
	"dsa-catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const topicIDLocal = "validated_topic_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTopicID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateTopicID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateTopicID(id); len(errs) > 0 {
			return errs
		}

		c.Locals(topicIDLocal, id)
		return c.Next()
	}
}

// TopicID returns the id stored by ValidateTopicID, falling back to the raw parameter.
func TopicID(c *fiber.Ctx) string {
	if id, ok := c.Locals(topicIDLocal).(string); ok {
		return id
	}
	return c.Params("id")
}
