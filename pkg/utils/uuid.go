// pkg/utils/uuid.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUID แปลง string เป็น UUID
func ParseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, errors.New("empty UUID string")
	}
	return uuid.Parse(s)
}

// ParseUUIDParam ดึงและแปลง path parameter เป็น UUID
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return ParseUUID(c.Params(name))
}
