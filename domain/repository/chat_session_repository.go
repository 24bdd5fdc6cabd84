// domain/repository/chat_session_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type ChatSessionRepository interface {
	// CRUD operations
	Create(session *models.ChatSession) error
	GetByID(id uuid.UUID) (*models.ChatSession, error)
	Update(session *models.ChatSession) error
	Delete(id uuid.UUID) error

	// Query operations
	FindByUserID(userID uuid.UUID) ([]*models.ChatSession, error)
	FindByUserIDAndName(userID uuid.UUID, name string) (*models.ChatSession, error)
}
