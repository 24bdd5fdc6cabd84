// application/serviceimpl/status_like_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

type statusLikeService struct {
	statusLikeRepo repository.StatusLikeRepository
	userRepo       repository.UserRepository
}

// NewStatusLikeService สร้าง instance ใหม่ของ StatusLikeService
func NewStatusLikeService(
	statusLikeRepo repository.StatusLikeRepository,
	userRepo repository.UserRepository,
) service.StatusLikeService {
	return &statusLikeService{
		statusLikeRepo: statusLikeRepo,
		userRepo:       userRepo,
	}
}

// ToggleLike กด like/unlike status ของผู้ใช้อีกคน
// มีแถวอยู่แล้วลบออก (unlike) ไม่มีก็เพิ่ม (like) แล้วคืนสถานะ + จำนวนล่าสุด
func (s *statusLikeService) ToggleLike(likerID, targetUserID uuid.UUID) (bool, int64, error) {
	// ตรวจสอบว่ามีผู้ใช้ปลายทางอยู่จริง
	target, err := s.userRepo.FindByID(targetUserID)
	if err != nil {
		return false, 0, err
	}
	if target == nil {
		return false, 0, errors.New("user not found")
	}

	existing, err := s.statusLikeRepo.FindByPair(likerID, targetUserID)
	if err != nil {
		return false, 0, err
	}

	var hasLiked bool
	if existing != nil {
		// unlike
		if err := s.statusLikeRepo.DeleteByPair(likerID, targetUserID); err != nil {
			return false, 0, err
		}
		hasLiked = false
	} else {
		// like
		like := &models.StatusLike{
			ID:           uuid.New(),
			LikerID:      likerID,
			TargetUserID: targetUserID,
			CreatedAt:    time.Now(),
		}
		if err := s.statusLikeRepo.Create(like); err != nil {
			return false, 0, err
		}
		hasLiked = true
	}

	count, err := s.statusLikeRepo.CountByTargetUserID(targetUserID)
	if err != nil {
		return hasLiked, 0, err
	}

	return hasLiked, count, nil
}

// GetLikeStatus ดึงจำนวน like และสถานะของ viewer
func (s *statusLikeService) GetLikeStatus(viewerID, targetUserID uuid.UUID) (bool, int64, error) {
	count, err := s.statusLikeRepo.CountByTargetUserID(targetUserID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.statusLikeRepo.FindByPair(viewerID, targetUserID)
	if err != nil {
		return false, 0, err
	}

	return existing != nil, count, nil
}
