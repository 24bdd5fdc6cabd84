// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/domain/types"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type UserHandler struct {
	userService       service.UserService
	friendshipService service.FriendshipService
}

func NewUserHandler(userService service.UserService, friendshipService service.FriendshipService) *UserHandler {
	return &UserHandler{
		userService:       userService,
		friendshipService: friendshipService,
	}
}

// GetUser ดึงข้อมูล profile ของผู้ใช้คนอื่น
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	targetUserID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID: " + err.Error(),
		})
	}

	user, err := h.userService.GetUserByID(targetUserID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "user not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// UpdateProfile อัปเดต profile ของผู้ใช้ปัจจุบัน (display_name, bio, settings)
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input types.JSONB
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if len(input) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No fields to update",
		})
	}

	user, err := h.userService.UpdateProfile(userID, input)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch err.Error() {
		case "user not found":
			statusCode = fiber.StatusNotFound
		case "no updatable fields provided":
			statusCode = fiber.StatusBadRequest
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// Heartbeat อัปเดตเวลา active ล่าสุดของผู้ใช้
func (h *UserHandler) Heartbeat(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	if err := h.userService.UpdateLastActive(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Heartbeat recorded",
	})
}
