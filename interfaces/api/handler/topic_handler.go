// interfaces/api/handler/topic_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/port"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type TopicHandler struct {
	topicService service.TopicService
}

func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
	}
}

// GenerateTags สรุปบันทึกล่าสุดของผู้ใช้เป้าหมายเป็น status tag
// provider timeout ตอบ 408 ให้ client ตัดสินใจเอง ไม่ retry ฝั่ง server
func (h *TopicHandler) GenerateTags(c *fiber.Ctx) error {
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

	tags, err := h.topicService.GenerateTags(c.UserContext(), userID, targetUserID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, serviceimpl.ErrAccessDenied):
			statusCode = fiber.StatusForbidden
		case errors.Is(err, port.ErrCompletionTimeout):
			statusCode = fiber.StatusRequestTimeout
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"tags": tags,
		},
	})
}

// GenerateCommonTopics สร้างหัวข้อสนทนาร่วมกับเพื่อน
func (h *TopicHandler) GenerateCommonTopics(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		FriendID string   `json:"friend_id"`
		Lat      *float64 `json:"lat,omitempty"`
		Lng      *float64 `json:"lng,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	friendID, err := utils.ParseUUID(input.FriendID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid friend_id format",
		})
	}

	topics, err := h.topicService.GenerateCommonTopics(c.UserContext(), userID, friendID, input.Lat, input.Lng)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, serviceimpl.ErrNotFriends):
			statusCode = fiber.StatusForbidden
		case errors.Is(err, port.ErrCompletionTimeout):
			statusCode = fiber.StatusRequestTimeout
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"topics": topics,
		},
	})
}

// GenerateGuestTopics สร้างหัวข้อจากบันทึกสาธารณะ - endpoint นี้ไม่ต้อง login
func (h *TopicHandler) GenerateGuestTopics(c *fiber.Ctx) error {
	var input struct {
		UserID string   `json:"user_id"`
		Lat    *float64 `json:"lat,omitempty"`
		Lng    *float64 `json:"lng,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	targetUserID, err := utils.ParseUUID(input.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user_id format",
		})
	}

	topics, err := h.topicService.GenerateGuestTopics(c.UserContext(), targetUserID, input.Lat, input.Lng)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch {
		case err.Error() == "user not found":
			statusCode = fiber.StatusNotFound
		case errors.Is(err, port.ErrCompletionTimeout):
			statusCode = fiber.StatusRequestTimeout
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"topics": topics,
		},
	})
}
