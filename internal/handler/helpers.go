package handler

import (
	"errors"

	"github.com/DesVallees/VAQ-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getUserID returns the acting user id placed in context by RequireAuth.
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondServiceError translates a service failure into the wire shape
// the dashboard expects: validation errors become a 422 with the field
// map and invalid count, everything else a 400 with the message.
func respondServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(422).JSON(fiber.Map{
			"error":         "Validation failed",
			"fields":        ve.Fields,
			"invalid_count": len(ve.Fields),
		})
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}
