// infrastructure/persistence/postgres/note_repository.go
package postgres

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository สร้าง instance ใหม่ของ NoteRepository
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create สร้างบันทึกใหม่
func (r *noteRepository) Create(note *models.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	return r.db.Create(note).Error
}

// GetByID ดึงข้อมูลบันทึกตาม ID และตรวจสอบเจ้าของ
func (r *noteRepository) GetByID(id, userID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// Delete ลบบันทึก (เฉพาะเจ้าของ)
func (r *noteRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Note{}).Error
}

// FindByUserID ดึงรายการบันทึกของผู้ใช้ เรียงใหม่สุดก่อน
func (r *noteRepository) FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	var notes []*models.Note
	var total int64

	// นับจำนวนทั้งหมด
	if err := r.db.Model(&models.Note{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// ดึงข้อมูล
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error

	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

// FindByCategoryID ดึงบันทึกใน folder ที่ระบุ
func (r *noteRepository) FindByCategoryID(userID, categoryID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	var notes []*models.Note
	var total int64

	// นับจำนวนทั้งหมด
	if err := r.db.Model(&models.Note{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// ดึงข้อมูล
	err := r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error

	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

// FindRecentByUserID ดึงบันทึกล่าสุดของผู้ใช้ (รวม private) สำหรับ AI pipeline
func (r *noteRepository) FindRecentByUserID(userID uuid.UUID, limit int) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error

	if err != nil {
		return nil, err
	}

	return notes, nil
}

// FindRecentPublicByUserID ดึงบันทึกล่าสุดเฉพาะที่ไม่ private
// ใช้ตอนอ่านข้าม user (guest topics) - private ถูกตัดออกเสมอไม่ว่าจะเป็นเพื่อนหรือไม่
func (r *noteRepository) FindRecentPublicByUserID(userID uuid.UUID, limit int) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.Where("user_id = ? AND is_private = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error

	if err != nil {
		return nil, err
	}

	return notes, nil
}

// CountByCategoryID นับบันทึกที่ยังอ้างอิง category
func (r *noteRepository) CountByCategoryID(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}
