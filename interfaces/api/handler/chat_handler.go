// interfaces/api/handler/chat_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// chatStatusCode แปลง error จาก service เป็น HTTP status
func chatStatusCode(err error) int {
	switch err.Error() {
	case "session not found":
		return fiber.StatusNotFound
	case "session name already exists":
		return fiber.StatusConflict
	case "invalid message role", "category does not belong to user":
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateSession สร้าง chat session ใหม่
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		Name       string  `json:"name"`
		CategoryID *string `json:"category_id,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Session name is required",
		})
	}

	var categoryIDPtr *uuid.UUID
	if input.CategoryID != nil && *input.CategoryID != "" {
		categoryUUID, err := utils.ParseUUID(*input.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid category_id format",
			})
		}
		categoryIDPtr = &categoryUUID
	}

	session, err := h.chatService.CreateSession(userID, categoryIDPtr, input.Name)
	if err != nil {
		return c.Status(chatStatusCode(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Session created successfully",
		"data":    session,
	})
}

// GetSessions ดึงรายการ session ของผู้ใช้
func (h *ChatHandler) GetSessions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessions, err := h.chatService.GetUserSessions(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sessions,
	})
}

// UpdateSession แก้ไขชื่อหรือย้าย folder ของ session
func (h *ChatHandler) UpdateSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	var input struct {
		Name       string  `json:"name"`
		CategoryID *string `json:"category_id,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	var categoryIDPtr *uuid.UUID
	if input.CategoryID != nil && *input.CategoryID != "" {
		categoryUUID, err := utils.ParseUUID(*input.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid category_id format",
			})
		}
		categoryIDPtr = &categoryUUID
	}

	session, err := h.chatService.UpdateSession(sessionID, userID, input.Name, categoryIDPtr)
	if err != nil {
		return c.Status(chatStatusCode(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Session updated successfully",
		"data":    session,
	})
}

// DeleteSession ลบ session พร้อมข้อความทั้งหมดใน session
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	if err := h.chatService.DeleteSession(sessionID, userID); err != nil {
		return c.Status(chatStatusCode(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Session deleted successfully",
	})
}

// AddMessage เพิ่มข้อความเข้า session
func (h *ChatHandler) AddMessage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	var input struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Message content is required",
		})
	}

	message, err := h.chatService.AddMessage(sessionID, userID, models.ChatMessageRole(input.Role), input.Content)
	if err != nil {
		return c.Status(chatStatusCode(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message added successfully",
		"data":    message,
	})
}

// GetMessages ดึงข้อความทั้งหมดใน session เรียงตามเวลา
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	sessionID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid session ID: " + err.Error(),
		})
	}

	limit := c.QueryInt("limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := c.QueryInt("offset", 0)

	messages, total, err := h.chatService.GetSessionMessages(sessionID, userID, limit, offset)
	if err != nil {
		return c.Status(chatStatusCode(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"meta": fiber.Map{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}
