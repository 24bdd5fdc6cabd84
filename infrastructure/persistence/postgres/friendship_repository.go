// infrastructure/persistence/postgres/friendship_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository สร้าง instance ใหม่ของ FriendshipRepository
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(friendship *models.Friendship) error {
	if friendship.ID == uuid.Nil {
		friendship.ID = uuid.New()
	}
	if friendship.CreatedAt.IsZero() {
		friendship.CreatedAt = time.Now()
	}

	return r.db.Create(friendship).Error
}

// FindByPair ดึงความสัมพันธ์ของคู่ที่เรียงลำดับแล้ว
func (r *friendshipRepository) FindByPair(user1ID, user2ID uuid.UUID) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).First(&friendship).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &friendship, nil
}

func (r *friendshipRepository) DeleteByPair(user1ID, user2ID uuid.UUID) error {
	return r.db.Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).
		Delete(&models.Friendship{}).Error
}

// FindByUserID ดึงความสัมพันธ์ทั้งหมดที่ผู้ใช้อยู่ฝั่งใดฝั่งหนึ่ง
func (r *friendshipRepository) FindByUserID(userID uuid.UUID) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	if err := r.db.Where("(user1_id = ? OR user2_id = ?) AND status = ?",
		userID, userID, models.FriendshipStatusAccepted).Find(&friendships).Error; err != nil {
		return nil, err
	}
	return friendships, nil
}
