// domain/service/note_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// NoteService เป็น interface ที่กำหนดฟังก์ชันของ Note Service
type NoteService interface {
	// CreateNote สร้างบันทึกใหม่ category (ถ้าระบุ) ต้องเป็นของผู้ใช้คนเดียวกัน
	CreateNote(userID uuid.UUID, categoryID *uuid.UUID, content string, isPrivate bool) (*models.Note, error)
	DeleteNote(id, userID uuid.UUID) error

	// Query operations
	GetUserNotes(userID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)
	GetCategoryNotes(userID, categoryID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)
}
