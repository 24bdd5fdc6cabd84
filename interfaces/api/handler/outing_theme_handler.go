// interfaces/api/handler/outing_theme_handler.go
package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/scheduler"
)

type OutingThemeHandler struct {
	themeService    service.OutingThemeService
	expiryProcessor *scheduler.ThemeExpiryProcessor
}

func NewOutingThemeHandler(
	themeService service.OutingThemeService,
	expiryProcessor *scheduler.ThemeExpiryProcessor,
) *OutingThemeHandler {
	return &OutingThemeHandler{
		themeService:    themeService,
		expiryProcessor: expiryProcessor,
	}
}

// SetTheme ตั้งธีม outing ใหม่ - ธีมเดิมที่ active ถูกปิดอัตโนมัติ
func (h *OutingThemeHandler) SetTheme(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		ThemeName        string     `json:"theme_name"`
		ThemeDescription string     `json:"theme_description"`
		ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if input.ThemeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Theme name is required",
		})
	}

	if input.ExpiresAt != nil && input.ExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Expiry time must be in the future",
		})
	}

	theme, err := h.themeService.SetTheme(userID, input.ThemeName, input.ThemeDescription, input.ExpiresAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	// ลงทะเบียน timer ให้ processor ปิดธีมตรงเวลา
	if theme.ExpiresAt != nil && h.expiryProcessor != nil {
		h.expiryProcessor.ScheduleTheme(theme.ID, *theme.ExpiresAt)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Theme set successfully",
		"data":    theme,
	})
}

// GetActiveTheme ดึงธีมที่ active อยู่ตอนนี้ (null ถ้าไม่มี)
func (h *OutingThemeHandler) GetActiveTheme(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	theme, err := h.themeService.GetActiveTheme(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    theme,
	})
}

// ClearTheme ปิดธีมที่ active อยู่
func (h *OutingThemeHandler) ClearTheme(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	// ยกเลิก timer ของธีมที่กำลัง active ก่อนปิด
	if h.expiryProcessor != nil {
		if theme, err := h.themeService.GetActiveTheme(userID); err == nil && theme != nil {
			h.expiryProcessor.CancelTheme(theme.ID)
		}
	}

	if err := h.themeService.ClearTheme(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Theme cleared successfully",
	})
}
