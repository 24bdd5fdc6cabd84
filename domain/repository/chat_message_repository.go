// domain/repository/chat_message_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type ChatMessageRepository interface {
	Create(message *models.ChatMessage) error
	FindBySessionID(sessionID uuid.UUID, limit, offset int) ([]*models.ChatMessage, int64, error)
}
