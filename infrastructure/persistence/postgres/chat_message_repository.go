// infrastructure/persistence/postgres/chat_message_repository.go
package postgres

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository สร้าง instance ใหม่ของ ChatMessageRepository
func NewChatMessageRepository(db *gorm.DB) repository.ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// Create สร้างข้อความใหม่ใน session
func (r *chatMessageRepository) Create(message *models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.Create(message).Error
}

// FindBySessionID ดึงข้อความใน session เรียงเก่าสุดก่อน
func (r *chatMessageRepository) FindBySessionID(sessionID uuid.UUID, limit, offset int) ([]*models.ChatMessage, int64, error) {
	var messages []*models.ChatMessage
	var total int64

	// นับจำนวนทั้งหมด
	if err := r.db.Model(&models.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// ดึงข้อมูล
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
