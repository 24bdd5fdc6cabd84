// infrastructure/persistence/postgres/status_like_repository.go
package postgres

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type statusLikeRepository struct {
	db *gorm.DB
}

// NewStatusLikeRepository สร้าง instance ใหม่ของ StatusLikeRepository
func NewStatusLikeRepository(db *gorm.DB) repository.StatusLikeRepository {
	return &statusLikeRepository{db: db}
}

func (r *statusLikeRepository) Create(like *models.StatusLike) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	return r.db.Create(like).Error
}

// FindByPair ดึงแถว like ของคู่ (liker, target)
func (r *statusLikeRepository) FindByPair(likerID, targetUserID uuid.UUID) (*models.StatusLike, error) {
	var like models.StatusLike
	err := r.db.Where("liker_id = ? AND target_user_id = ?", likerID, targetUserID).First(&like).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &like, nil
}

func (r *statusLikeRepository) DeleteByPair(likerID, targetUserID uuid.UUID) error {
	return r.db.Where("liker_id = ? AND target_user_id = ?", likerID, targetUserID).
		Delete(&models.StatusLike{}).Error
}

// CountByTargetUserID นับจำนวน like ทั้งหมดของ status
func (r *statusLikeRepository) CountByTargetUserID(targetUserID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.StatusLike{}).
		Where("target_user_id = ?", targetUserID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}
