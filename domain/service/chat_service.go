// domain/service/chat_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// ChatService เป็น interface ที่กำหนดฟังก์ชันของ Chat Session/Message Service
type ChatService interface {
	// Session operations - ตรวจสอบเจ้าของซ้ำทุกครั้งก่อน mutate
	CreateSession(userID uuid.UUID, categoryID *uuid.UUID, name string) (*models.ChatSession, error)
	GetUserSessions(userID uuid.UUID) ([]*models.ChatSession, error)
	UpdateSession(id, userID uuid.UUID, name string, categoryID *uuid.UUID) (*models.ChatSession, error)
	DeleteSession(id, userID uuid.UUID) error

	// Message operations
	AddMessage(sessionID, userID uuid.UUID, role models.ChatMessageRole, content string) (*models.ChatMessage, error)
	GetSessionMessages(sessionID, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, int64, error)
}
