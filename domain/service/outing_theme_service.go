// domain/service/outing_theme_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// OutingThemeService เป็น interface ที่กำหนดฟังก์ชันของ Outing Theme Service
type OutingThemeService interface {
	// SetTheme ตั้งธีมใหม่ - ธีมเดิมที่ active อยู่ถูกปิดอัตโนมัติ
	SetTheme(userID uuid.UUID, name, description string, expiresAt *time.Time) (*models.UserOutingTheme, error)
	GetActiveTheme(userID uuid.UUID) (*models.UserOutingTheme, error)
	ClearTheme(userID uuid.UUID) error

	// สำหรับ expiry processor
	GetExpiringThemesForProcessor(until time.Time, limit int) ([]*models.UserOutingTheme, error)
	ExpireTheme(id uuid.UUID) error
	ExpireOverdueThemes() (int64, error)
}
