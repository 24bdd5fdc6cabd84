// application/serviceimpl/outing_theme_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

type outingThemeService struct {
	themeRepo repository.OutingThemeRepository
}

// NewOutingThemeService สร้าง instance ใหม่ของ OutingThemeService
func NewOutingThemeService(themeRepo repository.OutingThemeRepository) service.OutingThemeService {
	return &outingThemeService{
		themeRepo: themeRepo,
	}
}

// SetTheme ตั้งธีมใหม่ - ปิดธีมเดิมที่ active อยู่ก่อนเสมอ
// รับประกันว่ามี active ได้มากสุดหนึ่งธีมต่อผู้ใช้
func (s *outingThemeService) SetTheme(userID uuid.UUID, name, description string, expiresAt *time.Time) (*models.UserOutingTheme, error) {
	if name == "" {
		return nil, errors.New("theme name is required")
	}
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, errors.New("expires_at must be in the future")
	}

	// ปิดธีมเดิมก่อน
	if err := s.themeRepo.DeactivateByUserID(userID); err != nil {
		return nil, err
	}

	now := time.Now()
	theme := &models.UserOutingTheme{
		ID:               uuid.New(),
		UserID:           userID,
		ThemeName:        name,
		ThemeDescription: description,
		IsActive:         true,
		ExpiresAt:        expiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.themeRepo.Create(theme); err != nil {
		return nil, err
	}

	return theme, nil
}

// GetActiveTheme ดึงธีมที่ active อยู่ (ถ้าหมดอายุแล้วให้ปิดและถือว่าไม่มี)
func (s *outingThemeService) GetActiveTheme(userID uuid.UUID) (*models.UserOutingTheme, error) {
	theme, err := s.themeRepo.FindActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, nil
	}

	// กันกรณี processor ยังไม่ทันปิดธีมที่หมดอายุ
	if theme.ExpiresAt != nil && theme.ExpiresAt.Before(time.Now()) {
		if err := s.themeRepo.DeactivateByID(theme.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return theme, nil
}

// ClearTheme ปิดธีมที่ active อยู่ของผู้ใช้
func (s *outingThemeService) ClearTheme(userID uuid.UUID) error {
	return s.themeRepo.DeactivateByUserID(userID)
}

// GetExpiringThemesForProcessor ดึงธีมที่จะหมดอายุภายในช่วงเวลาที่กำหนด
func (s *outingThemeService) GetExpiringThemesForProcessor(until time.Time, limit int) ([]*models.UserOutingTheme, error) {
	return s.themeRepo.FindActiveExpiringBefore(until, limit)
}

// ExpireTheme ปิดธีมตาม ID (callback จาก timer)
func (s *outingThemeService) ExpireTheme(id uuid.UUID) error {
	return s.themeRepo.DeactivateByID(id)
}

// ExpireOverdueThemes ปิดธีมที่เลยเวลาหมดอายุทั้งหมด (fallback poll)
func (s *outingThemeService) ExpireOverdueThemes() (int64, error) {
	return s.themeRepo.DeactivateExpired(time.Now())
}
