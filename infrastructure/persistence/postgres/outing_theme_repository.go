// infrastructure/persistence/postgres/outing_theme_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type outingThemeRepository struct {
	db *gorm.DB
}

// NewOutingThemeRepository สร้าง instance ใหม่ของ OutingThemeRepository
func NewOutingThemeRepository(db *gorm.DB) repository.OutingThemeRepository {
	return &outingThemeRepository{db: db}
}

func (r *outingThemeRepository) Create(theme *models.UserOutingTheme) error {
	if theme.ID == uuid.Nil {
		theme.ID = uuid.New()
	}
	return r.db.Create(theme).Error
}

// FindActiveByUserID ดึงธีมที่ active อยู่ของผู้ใช้ (มีได้มากสุดหนึ่งธีม)
func (r *outingThemeRepository) FindActiveByUserID(userID uuid.UUID) (*models.UserOutingTheme, error) {
	var theme models.UserOutingTheme
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&theme).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &theme, nil
}

// DeactivateByUserID ปิดธีม active ทั้งหมดของผู้ใช้
func (r *outingThemeRepository) DeactivateByUserID(userID uuid.UUID) error {
	return r.db.Model(&models.UserOutingTheme{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

// DeactivateByID ปิดธีมตาม ID (เรียกจาก expiry processor)
func (r *outingThemeRepository) DeactivateByID(id uuid.UUID) error {
	return r.db.Model(&models.UserOutingTheme{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

// FindActiveExpiringBefore ดึงธีมที่จะหมดอายุก่อนเวลาที่กำหนด (ใช้ตั้ง timer ล่วงหน้า)
func (r *outingThemeRepository) FindActiveExpiringBefore(t time.Time, limit int) ([]*models.UserOutingTheme, error) {
	var themes []*models.UserOutingTheme
	err := r.db.Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, t).
		Order("expires_at ASC").
		Limit(limit).
		Find(&themes).Error

	if err != nil {
		return nil, err
	}

	return themes, nil
}

// DeactivateExpired ปิดธีมที่เลยเวลาหมดอายุแล้วทั้งหมด (fallback poll)
func (r *outingThemeRepository) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.UserOutingTheme{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})

	return result.RowsAffected, result.Error
}
