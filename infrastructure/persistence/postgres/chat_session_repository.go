// infrastructure/persistence/postgres/chat_session_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type chatSessionRepository struct {
	db *gorm.DB
}

// NewChatSessionRepository สร้าง instance ใหม่ของ ChatSessionRepository
func NewChatSessionRepository(db *gorm.DB) repository.ChatSessionRepository {
	return &chatSessionRepository{db: db}
}

// Create สร้าง session ใหม่
func (r *chatSessionRepository) Create(session *models.ChatSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return r.db.Create(session).Error
}

// GetByID ดึงข้อมูล session ตาม ID
func (r *chatSessionRepository) GetByID(id uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.Where("id = ?", id).First(&session).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// Update อัปเดตข้อมูล session
func (r *chatSessionRepository) Update(session *models.ChatSession) error {
	session.UpdatedAt = time.Now()
	return r.db.Save(session).Error
}

// Delete ลบ session - messages ถูกลบตามด้วย FK cascade ของฐานข้อมูล
func (r *chatSessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ChatSession{}, "id = ?", id).Error
}

// FindByUserID ดึงรายการ session ของผู้ใช้ เรียงตามที่ใช้งานล่าสุด
func (r *chatSessionRepository) FindByUserID(userID uuid.UUID) ([]*models.ChatSession, error) {
	var sessions []*models.ChatSession
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// FindByUserIDAndName ดึง session ตามชื่อ (ตรวจชื่อซ้ำ)
func (r *chatSessionRepository) FindByUserIDAndName(userID uuid.UUID, name string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&session).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}
