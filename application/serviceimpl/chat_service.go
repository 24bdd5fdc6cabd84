// application/serviceimpl/chat_service.go
package serviceimpl

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

type chatService struct {
	sessionRepo  repository.ChatSessionRepository
	messageRepo  repository.ChatMessageRepository
	categoryRepo repository.CategoryRepository
}

// NewChatService สร้าง instance ใหม่ของ ChatService
func NewChatService(
	sessionRepo repository.ChatSessionRepository,
	messageRepo repository.ChatMessageRepository,
	categoryRepo repository.CategoryRepository,
) service.ChatService {
	return &chatService{
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateSession สร้าง session ใหม่ ชื่อต้องไม่ซ้ำภายในผู้ใช้
func (s *chatService) CreateSession(userID uuid.UUID, categoryID *uuid.UUID, name string) (*models.ChatSession, error) {
	if name == "" {
		return nil, errors.New("session name is required")
	}

	// ตรวจชื่อซ้ำ
	existing, err := s.sessionRepo.FindByUserIDAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("session name already exists")
	}

	// ถ้ามี category ต้องเป็นของผู้ใช้คนเดียวกัน
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(*categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.UserID != userID {
			return nil, errors.New("category does not belong to user")
		}
	}

	now := time.Now()
	session := &models.ChatSession{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetUserSessions ดึงรายการ session ของผู้ใช้
func (s *chatService) GetUserSessions(userID uuid.UUID) ([]*models.ChatSession, error) {
	return s.sessionRepo.FindByUserID(userID)
}

// UpdateSession อัปเดต session - ตรวจสอบเจ้าของซ้ำก่อนแก้ไข
func (s *chatService) UpdateSession(id, userID uuid.UUID, name string, categoryID *uuid.UUID) (*models.ChatSession, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, errors.New("session not found")
	}

	if name != "" && name != session.Name {
		existing, err := s.sessionRepo.FindByUserIDAndName(userID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.New("session name already exists")
		}
		session.Name = name
	}

	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(*categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.UserID != userID {
			return nil, errors.New("category does not belong to user")
		}
		session.CategoryID = categoryID
	}

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession ลบ session - messages ถูกลบตามโดยฐานข้อมูล
func (s *chatService) DeleteSession(id, userID uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if session == nil || session.UserID != userID {
		return errors.New("session not found")
	}

	return s.sessionRepo.Delete(id)
}

// AddMessage เพิ่มข้อความใน session ของผู้ใช้
func (s *chatService) AddMessage(sessionID, userID uuid.UUID, role models.ChatMessageRole, content string) (*models.ChatMessage, error) {
	if !role.IsValid() {
		return nil, errors.New("invalid message role")
	}
	if content == "" {
		return nil, errors.New("message content is required")
	}

	// ตรวจสอบเจ้าของ session
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, errors.New("session not found")
	}

	message := &models.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	// อัปเดตเวลาใช้งานล่าสุดของ session
	if err := s.sessionRepo.Update(session); err != nil {
		// ไม่กระทบกับข้อความที่สร้างสำเร็จแล้ว
		log.Printf("[ChatService] failed to touch session %s: %v", sessionID, err)
	}

	return message, nil
}

// GetSessionMessages ดึงข้อความใน session (เฉพาะเจ้าของ)
func (s *chatService) GetSessionMessages(sessionID, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, int64, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, 0, err
	}
	if session == nil || session.UserID != userID {
		return nil, 0, errors.New("session not found")
	}

	return s.messageRepo.FindBySessionID(sessionID, limit, offset)
}
