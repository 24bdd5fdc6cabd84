// interfaces/api/handler/status_like_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type StatusLikeHandler struct {
	statusLikeService service.StatusLikeService
}

func NewStatusLikeHandler(statusLikeService service.StatusLikeService) *StatusLikeHandler {
	return &StatusLikeHandler{
		statusLikeService: statusLikeService,
	}
}

// ToggleLike กด like/unlike สถานะของผู้ใช้เป้าหมาย
func (h *StatusLikeHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	targetUserID, err := utils.ParseUUIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID: " + err.Error(),
		})
	}

	hasLiked, likeCount, err := h.statusLikeService.ToggleLike(userID, targetUserID)
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
		"data": fiber.Map{
			"has_liked":  hasLiked,
			"like_count": likeCount,
		},
	})
}

// GetLikeStatus ดึงจำนวน like และสถานะของผู้เรียก
func (h *StatusLikeHandler) GetLikeStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	targetUserID, err := utils.ParseUUIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID: " + err.Error(),
		})
	}

	hasLiked, likeCount, err := h.statusLikeService.GetLikeStatus(userID, targetUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"has_liked":  hasLiked,
			"like_count": likeCount,
		},
	})
}
