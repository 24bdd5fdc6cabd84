// interfaces/api/handler/category_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory สร้าง folder ใหม่
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		Name      string `json:"name"`
		Color     string `json:"color"`
		Icon      string `json:"icon"`
		IsPrivate bool   `json:"is_private"`
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
			"message": "Category name is required",
		})
	}

	category, err := h.categoryService.CreateCategory(userID, input.Name, input.Color, input.Icon, input.IsPrivate)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "category name already exists" {
			statusCode = fiber.StatusConflict
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// GetCategories ดึงรายการ folder ของผู้ใช้
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	categories, err := h.categoryService.GetUserCategories(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// UpdateCategory อัปเดต folder
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	categoryID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID: " + err.Error(),
		})
	}

	var input struct {
		Name      string `json:"name"`
		Color     string `json:"color"`
		Icon      string `json:"icon"`
		IsPrivate *bool  `json:"is_private,omitempty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	category, err := h.categoryService.UpdateCategory(categoryID, userID, input.Name, input.Color, input.Icon, input.IsPrivate)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		switch err.Error() {
		case "category not found":
			statusCode = fiber.StatusNotFound
		case "category name already exists":
			statusCode = fiber.StatusConflict
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}

// DeleteCategory ลบ folder
// ถ้ายังมีบันทึกอ้างอิงอยู่ตอบ 409 พร้อมจำนวนบันทึกที่ block การลบ
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	categoryID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID: " + err.Error(),
		})
	}

	blockingNotes, err := h.categoryService.DeleteCategory(categoryID, userID)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotEmpty) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
				"data": fiber.Map{
					"blocking_notes": blockingNotes,
				},
			})
		}

		statusCode := fiber.StatusInternalServerError
		if err.Error() == "category not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}
