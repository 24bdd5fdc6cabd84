// interfaces/api/handler/friendship_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type FriendshipHandler struct {
	friendshipService service.FriendshipService
	categoryService   service.CategoryService
}

func NewFriendshipHandler(friendshipService service.FriendshipService, categoryService service.CategoryService) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService: friendshipService,
		categoryService:   categoryService,
	}
}

// AddFriend เพิ่มเพื่อน - ความสัมพันธ์เป็น symmetric ฝั่งเดียวเพิ่มก็เห็นทั้งคู่
func (h *FriendshipHandler) AddFriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := utils.ParseUUIDParam(c, "friendId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid friend ID: " + err.Error(),
		})
	}

	friendship, err := h.friendshipService.AddFriend(userID, friendID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch err.Error() {
		case "cannot add yourself as a friend":
			statusCode = fiber.StatusBadRequest
		case "friendship already exists":
			statusCode = fiber.StatusConflict
		case "user not found":
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Friend added successfully",
		"data":    friendship,
	})
}

// RemoveFriend ลบเพื่อน
func (h *FriendshipHandler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := utils.ParseUUIDParam(c, "friendId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid friend ID: " + err.Error(),
		})
	}

	if err := h.friendshipService.RemoveFriend(userID, friendID); err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "friendship not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Friend removed successfully",
	})
}

// GetFriends ดึงรายชื่อเพื่อนทั้งหมดของผู้ใช้
func (h *FriendshipHandler) GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friends, err := h.friendshipService.GetFriends(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    friends,
	})
}

// GetFriendCategories ดึง folder ของเพื่อน
// เจ้าของเห็นทั้งหมด เพื่อนเห็นเฉพาะที่ไม่ private คนนอกถูกปฏิเสธ
func (h *FriendshipHandler) GetFriendCategories(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := utils.ParseUUIDParam(c, "friendId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid friend ID: " + err.Error(),
		})
	}

	categories, err := h.categoryService.GetFriendPublicCategories(userID, friendID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "access denied" {
			statusCode = fiber.StatusForbidden
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}
