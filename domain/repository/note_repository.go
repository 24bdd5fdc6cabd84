// domain/repository/note_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type NoteRepository interface {
	// CRUD operations
	Create(note *models.Note) error
	GetByID(id, userID uuid.UUID) (*models.Note, error)
	Delete(id, userID uuid.UUID) error

	// Query operations
	FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)
	FindByCategoryID(userID, categoryID uuid.UUID, limit, offset int) ([]*models.Note, int64, error)

	// สำหรับ AI pipeline: ดึงบันทึกล่าสุด (ใหม่สุดก่อน)
	FindRecentByUserID(userID uuid.UUID, limit int) ([]*models.Note, error)
	FindRecentPublicByUserID(userID uuid.UUID, limit int) ([]*models.Note, error)

	// นับบันทึกที่ยังอ้างอิง category (ใช้บล็อกการลบ folder)
	CountByCategoryID(categoryID uuid.UUID) (int64, error)
}
