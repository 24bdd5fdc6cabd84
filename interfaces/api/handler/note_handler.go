// interfaces/api/handler/note_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type NoteHandler struct {
	noteService service.NoteService
}

func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// CreateNote สร้างบันทึกใหม่
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	// Parse request body
	var input struct {
		Content    string  `json:"content"`
		CategoryID *string `json:"category_id,omitempty"`
		IsPrivate  bool    `json:"is_private"`
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
			"message": "Note content is required",
		})
	}

	// แปลง category_id จาก string เป็น UUID
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

	note, err := h.noteService.CreateNote(userID, categoryIDPtr, input.Content, input.IsPrivate)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "category does not belong to user" {
			statusCode = fiber.StatusBadRequest
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    note,
	})
}

// GetNotes ดึงรายการบันทึกของผู้ใช้
// รองรับ query parameter category_id เพื่อกรองเฉพาะ folder นั้น
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)

	var notes []*models.Note
	var total int64

	categoryIDStr := c.Query("category_id")
	if categoryIDStr != "" {
		categoryID, err := utils.ParseUUID(categoryIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid category_id format",
			})
		}

		notes, total, err = h.noteService.GetCategoryNotes(userID, categoryID, limit, offset)
		if err != nil {
			statusCode := fiber.StatusInternalServerError
			if err.Error() == "category does not belong to user" {
				statusCode = fiber.StatusForbidden
			}
			return c.Status(statusCode).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
	} else {
		notes, total, err = h.noteService.GetUserNotes(userID, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
		"meta": fiber.Map{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// DeleteNote ลบบันทึก
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	if err := h.noteService.DeleteNote(noteID, userID); err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "note not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note deleted successfully",
	})
}
