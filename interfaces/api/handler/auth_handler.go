// interfaces/api/handler/auth_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register สมัครสมาชิกใหม่
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Username string  `json:"username"`
		Password string  `json:"password"`
		ID       *string `json:"id,omitempty"` // สำหรับ claim ลิงก์ที่แจกไว้ล่วงหน้า
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username and password are required",
		})
	}

	var claimID *uuid.UUID
	if input.ID != nil && *input.ID != "" {
		parsed, err := utils.ParseUUID(*input.ID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid id format",
			})
		}
		claimID = &parsed
	}

	user, token, err := h.authService.Register(input.Username, input.Password, claimID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "username already exists" || err.Error() == "user id already claimed" {
			statusCode = fiber.StatusConflict
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registered successfully",
		"data": fiber.Map{
			"user":  user,
			"token": token,
		},
	})
}

// Login เข้าสู่ระบบ
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	user, token, err := h.authService.Login(input.Username, input.Password)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "user or password incorrect" {
			statusCode = fiber.StatusUnauthorized
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged in successfully",
		"data": fiber.Map{
			"user":  user,
			"token": token,
		},
	})
}

// GetMe ดึงข้อมูลผู้ใช้ปัจจุบันจาก token
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	user, err := h.authService.GetCurrentUser(userID)
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
