// interfaces/api/middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

const userIDKey = "user_id"

// Protected ตรวจสอบ access token จาก Authorization header
// ผ่านแล้วเก็บ user_id ไว้ใน locals ให้ handler ใช้ต่อ
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing authorization header",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid authorization header format",
			})
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}

// GetUserUUID ดึง user ID ของผู้เรียกจาก locals
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals(userIDKey).(string)
	if !ok || idStr == "" {
		return uuid.Nil, errors.New("user not authenticated")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in token")
	}

	return id, nil
}
