// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/types"
)

// UserService เป็น interface ที่กำหนดฟังก์ชันของ User Service
type UserService interface {
	GetUserByID(id uuid.UUID) (*models.User, error)
	UpdateProfile(id uuid.UUID, data types.JSONB) (*models.User, error)
	UpdateLastActive(id uuid.UUID) error
}
