// domain/repository/outing_theme_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type OutingThemeRepository interface {
	Create(theme *models.UserOutingTheme) error
	FindActiveByUserID(userID uuid.UUID) (*models.UserOutingTheme, error)

	// DeactivateByUserID ปิดธีม active ทั้งหมดของผู้ใช้ (ก่อนตั้งธีมใหม่)
	DeactivateByUserID(userID uuid.UUID) error
	DeactivateByID(id uuid.UUID) error

	// สำหรับ expiry processor
	FindActiveExpiringBefore(t time.Time, limit int) ([]*models.UserOutingTheme, error)
	DeactivateExpired(now time.Time) (int64, error)
}
